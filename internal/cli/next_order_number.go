package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newNextOrderNumberCommand(boot Bootstrap) *cobra.Command {
	return &cobra.Command{
		Use:   "next-order-number",
		Short: "Muestra el número que recibiría la próxima orden (no lo reserva)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd, boot, func(ctx context.Context, deps *Deps) error {
				n, err := deps.Orders.NextNumber(ctx)
				if err != nil {
					return fmt.Errorf("next-order-number: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			})
		},
	}
}
