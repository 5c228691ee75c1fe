package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetPasswordCommand(boot Bootstrap) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <username>",
		Short: "Genera una contraseña temporal para la cuenta",
		Long: `Asigna a la cuenta una contraseña temporal aleatoria de 8 caracteres y la
imprime una sola vez. Solo se guarda su hash.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, boot, func(ctx context.Context, deps *Deps) error {
				tmp, err := deps.Auth.ResetPasswordByUsername(ctx, args[0])
				if err != nil {
					return fmt.Errorf("reset-password %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "contraseña temporal para %s: %s\n", args[0], tmp)
				return nil
			})
		},
	}
}
