package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/cli"
	"github.com/jhoicas/Inventario-stock/internal/domain"
)

type fakeAuth struct{ users map[string]bool }

func (f fakeAuth) ResetPasswordByUsername(_ context.Context, username string) (string, error) {
	if !f.users[username] {
		return "", domain.ErrUserNotFound
	}
	return "Tmp#1234", nil
}

type fakeAccounts struct{ created []dto.CreateUserRequest }

func (f *fakeAccounts) CreateUser(_ context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Password == "" {
		return nil, domain.NewValidationError("password", "password", "contraseña requerida")
	}
	f.created = append(f.created, in)
	return &dto.UserResponse{ID: "u-1", Username: in.Username, Role: in.Role}, nil
}

type fakeProducts struct{ created []dto.ProductRequest }

func (f *fakeProducts) Create(_ context.Context, in dto.ProductRequest) (string, error) {
	if in.SKU == "" {
		return "", domain.NewValidationError("sku", "sku", "sku requerido")
	}
	f.created = append(f.created, in)
	return "id-" + in.SKU, nil
}

type fakeOrders struct{ next string }

func (f fakeOrders) NextNumber(context.Context) (string, error) { return f.next, nil }

func run(t *testing.T, deps *cli.Deps, args ...string) (string, error) {
	t.Helper()
	return runWithInput(t, deps, "", args...)
}

func runWithInput(t *testing.T, deps *cli.Deps, stdin string, args ...string) (string, error) {
	t.Helper()
	closed := false
	root := cli.NewRootCommand(func(context.Context) (*cli.Deps, func(), error) {
		return deps, func() { closed = true }, nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		assert.True(t, closed, "las dependencias deben liberarse")
	}
	return out.String(), err
}

func TestResetPassword(t *testing.T) {
	deps := &cli.Deps{Auth: fakeAuth{users: map[string]bool{"ana": true}}}

	out, err := run(t, deps, "reset-password", "ana")
	require.NoError(t, err)
	assert.Contains(t, out, "Tmp#1234")

	_, err = run(t, deps, "reset-password", "nadie")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = run(t, deps, "reset-password")
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	accounts := &fakeAccounts{}
	deps := &cli.Deps{Accounts: accounts}

	out, err := runWithInput(t, deps, "Secreto123\n", "create-user", "ana_admin", "--full-name", "Ana Pérez")
	require.NoError(t, err)
	assert.Contains(t, out, "usuario ana_admin creado (rol admin")
	require.Len(t, accounts.created, 1)
	assert.Equal(t, dto.CreateUserRequest{
		Username: "ana_admin", Password: "Secreto123", FullName: "Ana Pérez", Role: "admin",
	}, accounts.created[0])

	_, err = runWithInput(t, deps, "Otra1234", "create-user", "beto", "--full-name", "Beto", "--role", "staff")
	require.NoError(t, err)
	assert.Equal(t, "staff", accounts.created[1].Role)
	assert.Equal(t, "Otra1234", accounts.created[1].Password)

	_, err = runWithInput(t, deps, "", "create-user", "carla", "--full-name", "Carla")
	assert.Error(t, err)
	assert.Len(t, accounts.created, 2)
}

func TestNextOrderNumber(t *testing.T) {
	out, err := run(t, &cli.Deps{Orders: fakeOrders{next: "PO-2026-007"}}, "next-order-number")
	require.NoError(t, err)
	assert.Equal(t, "PO-2026-007\n", out)
}

func TestReadProducts_Latin1(t *testing.T) {
	src := "Name;SKU;unit_price;Quantity In Stock;ignorada\nCafé molido;CAFE-001;12500.50;10;x\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	rows, err := cli.ReadProducts(strings.NewReader(latin1), "latin1", ';')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, dto.ProductRequest{
		Name:            "Café molido",
		SKU:             "CAFE-001",
		UnitPrice:       "12500.50",
		QuantityInStock: "10",
	}, rows[0].Request)
}

func TestReadProducts_UTF8ConBOM(t *testing.T) {
	src := "\ufeffname,sku,unitPrice\nTé verde,TEAS-002,3000\n"
	rows, err := cli.ReadProducts(strings.NewReader(src), "utf-8", ',')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Té verde", rows[0].Request.Name)
}

func TestReadProducts_Errores(t *testing.T) {
	_, err := cli.ReadProducts(strings.NewReader("name,sku\nA,AAAA-001\n"), "utf-8", ',')
	assert.ErrorContains(t, err, "unitprice")

	_, err = cli.ReadProducts(strings.NewReader(""), "utf-8", ',')
	assert.Error(t, err)

	_, err = cli.ReadProducts(strings.NewReader("name,sku,unitPrice\n"), "ebcdic", ',')
	assert.ErrorContains(t, err, "ebcdic")
}

func TestImportProducts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productos.csv")
	csv := "name,sku,unitPrice\nLeche,LECH-001,4200\nSin sku,,100\nPan,PANE-002,1500\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	products := &fakeProducts{}
	out, err := run(t, &cli.Deps{Products: products}, "import-products", path)
	require.Error(t, err)
	assert.Contains(t, out, "línea 3")
	assert.Contains(t, out, "importados: 2, con error: 1")
	require.Len(t, products.created, 2)
	assert.Equal(t, "LECH-001", products.created[0].SKU)

	products = &fakeProducts{}
	out, err = run(t, &cli.Deps{Products: products}, "import-products", "--stop-on-error", path)
	require.Error(t, err)
	assert.Contains(t, out, "importados: 1, con error: 1")
}

func TestImportProducts_ArchivoInexistente(t *testing.T) {
	_, err := run(t, &cli.Deps{Products: &fakeProducts{}}, "import-products", filepath.Join(t.TempDir(), "no.csv"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
}
