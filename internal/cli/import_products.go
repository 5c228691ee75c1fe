package cli

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
)

// ProductRow fila del CSV ya convertida, con su número de línea para reportar errores.
type ProductRow struct {
	Line    int
	Request dto.ProductRequest
}

// columnas reconocidas (normalizadas: minúsculas, sin '_' ni espacios) → setter.
var productColumns = map[string]func(*dto.ProductRequest, string){
	"name":            func(p *dto.ProductRequest, v string) { p.Name = v },
	"sku":             func(p *dto.ProductRequest, v string) { p.SKU = v },
	"categoryid":      func(p *dto.ProductRequest, v string) { p.CategoryID = v },
	"supplierid":      func(p *dto.ProductRequest, v string) { p.SupplierID = v },
	"description":     func(p *dto.ProductRequest, v string) { p.Description = v },
	"unitprice":       func(p *dto.ProductRequest, v string) { p.UnitPrice = v },
	"quantityinstock": func(p *dto.ProductRequest, v string) { p.QuantityInStock = v },
	"reorderlevel":    func(p *dto.ProductRequest, v string) { p.ReorderLevel = v },
	"imageurl":        func(p *dto.ProductRequest, v string) { p.ImageURL = v },
}

var requiredColumns = []string{"name", "sku", "unitprice"}

// charsetFor devuelve la codificación del archivo; UTF-8 descarta un BOM inicial.
func charsetFor(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", name)
	}
}

func normalizeColumn(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, " ", "")
}

// ReadProducts decodifica el CSV (primera fila = encabezados) a requests de producto.
// Las columnas desconocidas se ignoran; name, sku y unitPrice son obligatorias.
func ReadProducts(r io.Reader, charset string, comma rune) ([]ProductRow, error) {
	enc, err := charsetFor(charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(transform.NewReader(r, enc.NewDecoder()))
	cr.Comma = comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("archivo vacío")
	}
	if err != nil {
		return nil, fmt.Errorf("leer encabezados: %w", err)
	}
	setters := make([]func(*dto.ProductRequest, string), len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		col := normalizeColumn(h)
		setters[i] = productColumns[col]
		seen[col] = true
	}
	for _, col := range requiredColumns {
		if !seen[col] {
			return nil, fmt.Errorf("falta la columna %s", col)
		}
	}

	var rows []ProductRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		var req dto.ProductRequest
		for i, v := range record {
			if i < len(setters) && setters[i] != nil {
				setters[i](&req, strings.TrimSpace(v))
			}
		}
		rows = append(rows, ProductRow{Line: line, Request: req})
	}
	return rows, nil
}

func newImportProductsCommand(boot Bootstrap) *cobra.Command {
	var (
		charset     string
		delimiter   string
		stopOnError bool
	)
	cmd := &cobra.Command{
		Use:   "import-products <archivo.csv>",
		Short: "Da de alta productos desde un CSV",
		Long: `Lee un CSV con encabezados (name, sku, categoryId, supplierId, description,
unitPrice, quantityInStock, reorderLevel, imageUrl) y crea un producto por fila con
las mismas validaciones de la API. Acepta archivos UTF-8, Latin-1 o Windows-1252.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len([]rune(delimiter)) != 1 {
				return fmt.Errorf("el delimitador debe ser un solo carácter")
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("abrir %s: %w", args[0], err)
			}
			defer f.Close()

			rows, err := ReadProducts(f, charset, []rune(delimiter)[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return withDeps(cmd, boot, func(ctx context.Context, deps *Deps) error {
				return importRows(ctx, cmd.OutOrStdout(), deps.Products, rows, stopOnError)
			})
		},
	}
	cmd.Flags().StringVar(&charset, "encoding", "utf-8", "Codificación del archivo: utf-8, latin1, windows-1252")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "Separador de columnas")
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "Detenerse en la primera fila con error")
	return cmd
}

// importRows crea los productos fila por fila y reporta las que fallan.
func importRows(ctx context.Context, out io.Writer, products ProductCreator, rows []ProductRow, stopOnError bool) error {
	created, failed := 0, 0
	for _, row := range rows {
		if _, err := products.Create(ctx, row.Request); err != nil {
			failed++
			fmt.Fprintf(out, "línea %d (%s): %v\n", row.Line, row.Request.SKU, err)
			if stopOnError {
				break
			}
			continue
		}
		created++
	}
	fmt.Fprintf(out, "importados: %d, con error: %d\n", created, failed)
	if failed > 0 {
		return fmt.Errorf("%d filas con error", failed)
	}
	return nil
}
