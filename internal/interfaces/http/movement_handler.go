package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
)

// MovementHandler maneja las peticiones HTTP de movimientos de stock (protegido).
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Description  in/out con cantidad positiva; adjustment con delta con signo distinto de cero.
// @Tags         movements
// @Security     Bearer
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "productId, movementType, quantity, referenceNumber, notes"
// @Success      201   {object}  dto.MovementResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        action     query  string  false  "getAll | byProduct"
// @Param        productId  query  string  false  "Producto (byProduct)"
// @Param        limit      query  int     false  "Límite (getAll)"
// @Param        offset     query  int     false  "Desplazamiento (getAll)"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var (
		out []dto.MovementResponse
		err error
	)
	switch action := c.Query("action", "getAll"); action {
	case "getAll":
		var page dto.PageRequest
		if perr := c.QueryParser(&page); perr != nil {
			return invalidBody(c)
		}
		out, err = h.uc.List(c.UserContext(), page)
	case "byProduct":
		out, err = h.uc.ListByProduct(c.UserContext(), c.Query("productId"))
	default:
		return unknownAction(c, action)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
