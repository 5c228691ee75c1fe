package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/order"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/pkg/validator"
)

// OrderUseCase órdenes de compra: numeración, ciclo de vida, reportes y documentos.
type OrderUseCase struct {
	repo      repository.OrderRepository
	tx        OrderTxRunner
	suppliers repository.SupplierRepository
	pdf       OrderPDFRenderer
	xml       OrderXMLExporter
	mode      order.NumberingMode
	now       func() time.Time
}

// NewOrderUseCase construye el caso de uso. pdf y xml pueden ser nil si no se exponen documentos.
func NewOrderUseCase(
	repo repository.OrderRepository,
	tx OrderTxRunner,
	suppliers repository.SupplierRepository,
	pdf OrderPDFRenderer,
	xml OrderXMLExporter,
	mode order.NumberingMode,
) *OrderUseCase {
	return &OrderUseCase{
		repo:      repo,
		tx:        tx,
		suppliers: suppliers,
		pdf:       pdf,
		xml:       xml,
		mode:      mode,
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests y herramientas de migración).
func (uc *OrderUseCase) WithClock(now func() time.Time) *OrderUseCase {
	uc.now = now
	return uc
}

// Create emite el siguiente número y persiste la orden en estado pending.
// Leer el último número e insertar ocurre en una sola transacción bajo advisory lock.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.OrderRequest) (*entity.Order, error) {
	o, err := uc.orderFromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	o.ID = uuid.New().String()
	o.Status = entity.OrderStatusPending
	o.UserID = userID

	err = uc.tx.RunOrder(ctx, func(orders repository.OrderRepository) error {
		if err := orders.LockNumbering(ctx); err != nil {
			return err
		}
		last, err := orders.LastOrderNumber(ctx, order.Prefix+"-")
		if err != nil {
			return err
		}
		o.CreatedAt = uc.now()
		o.OrderNumber, err = order.NextNumber(last, o.CreatedAt, uc.mode)
		if err != nil {
			return err
		}
		return orders.Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// NextNumber vista previa del número que recibiría la próxima orden (no lo reserva).
func (uc *OrderUseCase) NextNumber(ctx context.Context) (string, error) {
	last, err := uc.repo.LastOrderNumber(ctx, order.Prefix+"-")
	if err != nil {
		return "", err
	}
	return order.NextNumber(last, uc.now(), uc.mode)
}

// GetByID obtiene una orden; nil si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	if !IsID(id) {
		return nil, nil
	}
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil || o == nil {
		return nil, err
	}
	resp := toOrderResponse(o)
	return &resp, nil
}

// GetByNumber obtiene una orden por su número (PO-2025-001); nil si no existe.
func (uc *OrderUseCase) GetByNumber(ctx context.Context, number string) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByNumber(ctx, strings.TrimSpace(number))
	if err != nil || o == nil {
		return nil, err
	}
	resp := toOrderResponse(o)
	return &resp, nil
}

func (uc *OrderUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.OrderResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

func (uc *OrderUseCase) ListByStatus(ctx context.Context, status string) ([]dto.OrderResponse, error) {
	if !order.IsValidStatus(status) {
		return nil, domain.NewValidationError("status", "oneof", "status debe ser uno de: pending received cancelled")
	}
	list, err := uc.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// Stats número total de órdenes y valor de las recibidas.
func (uc *OrderUseCase) Stats(ctx context.Context) (*dto.OrderStatsResponse, error) {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.TotalReceivedValue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OrderStatsResponse{TotalOrders: count, TotalValue: money(total)}, nil
}

// Update corrección completa de proveedor, fechas y monto. El número y el estado no cambian.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.OrderRequest) error {
	if !IsID(id) {
		return domain.ErrNotFound
	}
	o, err := uc.orderFromRequest(ctx, in)
	if err != nil {
		return err
	}
	o.ID = id
	return uc.repo.Update(ctx, o)
}

// UpdateStatus aplica una transición. Sin fila afectada: domain.ErrNotFound si la orden no
// existe, domain.ErrInvalidTransition si ya no está en un estado de origen válido.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, in dto.OrderStatusRequest) error {
	if err := validator.Struct(in); err != nil {
		return err
	}
	from := order.SourceStatesFor(in.Status)
	if len(from) == 0 {
		return domain.ErrInvalidTransition
	}
	if !IsID(id) {
		return domain.ErrNotFound
	}
	ok, err := uc.repo.TransitionStatus(ctx, id, from, in.Status)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return domain.ErrInvalidTransition
}

func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	if !IsID(id) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// PDF genera el documento imprimible. Devuelve bytes y nombre de archivo sugerido.
func (uc *OrderUseCase) PDF(ctx context.Context, id string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", domain.ErrNotFound
	}
	o, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.pdf.RenderOrder(ctx, o)
	if err != nil {
		return nil, "", err
	}
	return doc, o.OrderNumber + ".pdf", nil
}

// XML exporta la orden y devuelve además el digest SHA-256 (hex) de su forma canónica.
func (uc *OrderUseCase) XML(ctx context.Context, id string) (doc []byte, digest, filename string, err error) {
	if uc.xml == nil {
		return nil, "", "", domain.ErrNotFound
	}
	o, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, "", "", err
	}
	doc, digest, err = uc.xml.ExportOrder(ctx, o)
	if err != nil {
		return nil, "", "", err
	}
	return doc, digest, o.OrderNumber + ".xml", nil
}

func (uc *OrderUseCase) mustGet(ctx context.Context, id string) (*entity.OrderView, error) {
	if !IsID(id) {
		return nil, domain.ErrNotFound
	}
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// orderFromRequest valida y convierte; fecha de orden vacía → hoy.
func (uc *OrderUseCase) orderFromRequest(ctx context.Context, in dto.OrderRequest) (*entity.Order, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	total, err := parseMoney("totalAmount", in.TotalAmount)
	if err != nil {
		return nil, err
	}
	orderDate, err := parseDate("orderDate", in.OrderDate)
	if err != nil {
		return nil, err
	}
	if orderDate == nil {
		y, m, d := uc.now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		orderDate = &today
	}
	expected, err := parseDate("expectedDeliveryDate", in.ExpectedDeliveryDate)
	if err != nil {
		return nil, err
	}
	if expected != nil && expected.Before(*orderDate) {
		return nil, domain.NewValidationError("expectedDeliveryDate", "date",
			"la fecha de entrega no puede ser anterior a la fecha de la orden")
	}
	supplierID := strings.TrimSpace(in.SupplierID)
	if err := checkRefID("supplierId", supplierID); err != nil {
		return nil, err
	}
	s, err := uc.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NewValidationError("supplierId", "exists", "el proveedor no existe")
	}
	return &entity.Order{
		SupplierID:           supplierID,
		OrderDate:            *orderDate,
		ExpectedDeliveryDate: expected,
		TotalAmount:          total,
	}, nil
}

func toOrderResponses(list []*entity.OrderView) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func toOrderResponse(o *entity.OrderView) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		SupplierID:           o.SupplierID,
		SupplierName:         o.SupplierName,
		OrderDate:            formatDate(&o.OrderDate),
		ExpectedDeliveryDate: formatDate(o.ExpectedDeliveryDate),
		Status:               o.Status,
		TotalAmount:          o.TotalAmount,
		UserID:               o.UserID,
		UserName:             o.UserName,
		CreatedAt:            o.CreatedAt,
	}
}
