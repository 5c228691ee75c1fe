package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
)

// HeaderDocumentDigest lleva el SHA-256 (hex) de la forma canónica del XML exportado.
const HeaderDocumentDigest = "X-Document-Digest"

// OrderHandler maneja las peticiones HTTP de órdenes de compra (protegido).
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de compra
// @Description  El número (PO-...) se asigna al guardar; el estado inicial es pending.
// @Tags         orders
// @Security     Bearer
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.OrderRequest  true  "Proveedor, fechas y total"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	o, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MutationResponse{
		Success:     true,
		Message:     "orden creada",
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
	})
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "orden")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Consultar órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        action  query  string  false  "getAll | byStatus | byNumber | stats | nextNumber"
// @Param        status  query  string  false  "pending | received | cancelled (byStatus)"
// @Param        number  query  string  false  "Número de orden (byNumber)"
// @Param        limit   query  int     false  "Límite (getAll)"
// @Param        offset  query  int     false  "Desplazamiento (getAll)"
// @Success      200  {array}   dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var (
		out any
		err error
	)
	switch action := c.Query("action", "getAll"); action {
	case "getAll":
		var page dto.PageRequest
		if err := c.QueryParser(&page); err != nil {
			return invalidBody(c)
		}
		out, err = h.uc.List(ctx, page)
	case "byStatus":
		out, err = h.uc.ListByStatus(ctx, c.Query("status"))
	case "byNumber":
		o, gerr := h.uc.GetByNumber(ctx, c.Query("number"))
		if gerr == nil && o == nil {
			return notFound(c, "orden")
		}
		out, err = o, gerr
	case "stats":
		out, err = h.uc.Stats(ctx)
	case "nextNumber":
		var n string
		n, err = h.uc.NextNumber(ctx)
		out = dto.NextOrderNumberResponse{OrderNumber: n}
	default:
		return unknownAction(c, action)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir orden o cambiar su estado
// @Description  Sin action: corrección completa (el estado no cambia). action=updateStatus: transición pending → received | cancelled.
// @Tags         orders
// @Security     Bearer
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id      path   string            true   "ID de la orden"
// @Param        action  query  string            false  "updateStatus"
// @Param        status  query  string            false  "received | cancelled"
// @Param        body    body   dto.OrderRequest  false  "Registro completo"
// @Success      200     {object}  dto.MutationResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	switch action := c.Query("action"); action {
	case "":
		var in dto.OrderRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		if err := h.uc.Update(c.UserContext(), id, in); err != nil {
			return respondError(c, err)
		}
		return done(c, fiber.StatusOK, "orden actualizada")
	case "updateStatus":
		var in dto.OrderStatusRequest
		if err := c.QueryParser(&in); err != nil {
			return invalidBody(c)
		}
		if in.Status == "" && len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return invalidBody(c)
			}
		}
		if err := h.uc.UpdateStatus(c.UserContext(), id, in); err != nil {
			return respondError(c, err)
		}
		return done(c, fiber.StatusOK, "estado actualizado a "+in.Status)
	default:
		return unknownAction(c, action)
	}
}

// Delete godoc
// @Summary      Eliminar orden
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.MutationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return done(c, fiber.StatusOK, "orden eliminada")
}

// PDF godoc
// @Summary      Descargar la orden en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	doc, filename, err := h.uc.PDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(doc)
}

// XML godoc
// @Summary      Exportar la orden en XML
// @Description  La cabecera X-Document-Digest lleva el SHA-256 de la forma canónica (C14N).
// @Tags         orders
// @Security     Bearer
// @Produce      application/xml
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/xml [get]
func (h *OrderHandler) XML(c *fiber.Ctx) error {
	doc, digest, filename, err := h.uc.XML(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set(HeaderDocumentDigest, "sha-256="+digest)
	return c.Send(doc)
}
