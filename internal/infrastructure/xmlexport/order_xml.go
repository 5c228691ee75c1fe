// Package xmlexport serializa órdenes de compra a XML para intercambio con proveedores
// e incluye el digest SHA-256 de la forma canónica (C14N) para verificar integridad.
package xmlexport

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

var _ usecase.OrderXMLExporter = (*OrderExporter)(nil)

const (
	// Namespace espacio de nombres del documento de orden de compra.
	Namespace = "urn:inventario-stock:purchase-order:1"
	// AlgC14N algoritmo de canonicalización usado para el digest.
	AlgC14N = "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"

	dateLayout = "2006-01-02"
)

// OrderExporter implementa usecase.OrderXMLExporter con etree + c14n.
type OrderExporter struct {
	currency string
}

// NewOrderExporter construye el exportador; currency se declara en el atributo del total.
func NewOrderExporter(currency string) *OrderExporter {
	if currency == "" {
		currency = "COP"
	}
	return &OrderExporter{currency: currency}
}

// ExportOrder devuelve el XML (indentado) y el digest hex SHA-256 de su forma canónica.
func (e *OrderExporter) ExportOrder(_ context.Context, o *entity.OrderView) ([]byte, string, error) {
	if o == nil {
		return nil, "", fmt.Errorf("xmlexport: orden nil")
	}
	doc := e.build(o)
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("xmlexport: serializar: %w", err)
	}
	digest, err := Digest(out)
	if err != nil {
		return nil, "", err
	}
	return out, digest, nil
}

func (e *OrderExporter) build(o *entity.OrderView) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("PurchaseOrder")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("id", o.ID)

	root.CreateElement("OrderNumber").SetText(o.OrderNumber)
	root.CreateElement("OrderDate").SetText(o.OrderDate.Format(dateLayout))
	if o.ExpectedDeliveryDate != nil {
		root.CreateElement("ExpectedDeliveryDate").SetText(o.ExpectedDeliveryDate.Format(dateLayout))
	}
	root.CreateElement("Status").SetText(o.Status)

	supplier := root.CreateElement("Supplier")
	supplier.CreateAttr("id", o.SupplierID)
	supplier.SetText(o.SupplierName)

	total := root.CreateElement("TotalAmount")
	total.CreateAttr("currency", e.currency)
	total.SetText(o.TotalAmount.StringFixed(2))

	if o.UserID != "" {
		user := root.CreateElement("CreatedBy")
		user.CreateAttr("id", o.UserID)
		user.SetText(o.UserName)
	}
	root.CreateElement("CreatedAt").SetText(o.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"))
	return doc
}

// Digest SHA-256 (hex) de la forma canónica C14N de data.
func Digest(data []byte) (string, error) {
	canonical, err := Canonicalize(data)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Canonicalize aplica C14N inclusivo (sin comentarios) a data.
func Canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	out, err := c14n.Canonicalize(dec)
	if err != nil {
		return nil, fmt.Errorf("xmlexport: canonicalizar: %w", err)
	}
	return out, nil
}
