package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario.
type InventoryHandler struct {
	uc *ledger.UseCase
}

// NewInventoryHandler construye el handler inyectando el caso de uso.
func NewInventoryHandler(uc *ledger.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario completo
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  entity.InventoryItem
// @Router       /inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// LowStock godoc
// @Summary      Artículos por debajo de su punto de reorden
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  entity.InventoryItem
// @Router       /inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// UpdateByID godoc
// @Summary      Actualizar artículo por ID (fusión parcial)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a fusionar"
// @Success      200   {object}  entity.InventoryItem
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /inventory/{id} [put]
func (h *InventoryHandler) UpdateByID(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.UpdateByID(c.Context(), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(item)
}

// UpdateByName godoc
// @Summary      Actualizar artículo por nombre (sin distinguir mayúsculas)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        name  path  string                 true  "Nombre del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a fusionar"
// @Success      200   {object}  entity.InventoryItem
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /inventory/name/{name} [put]
func (h *InventoryHandler) UpdateByName(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	name, err := urlParam(c, "name")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_NAME", Message: "nombre inválido"})
	}
	item, err := h.uc.UpdateByName(c.Context(), name, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(item)
}
