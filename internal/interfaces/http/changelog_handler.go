package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/audit"
)

// ChangelogHandler expone el registro de auditoría (solo lectura).
type ChangelogHandler struct {
	rec *audit.Recorder
}

// NewChangelogHandler construye el handler.
func NewChangelogHandler(rec *audit.Recorder) *ChangelogHandler {
	return &ChangelogHandler{rec: rec}
}

// List godoc
// @Summary      Listar el changelog (más reciente primero)
// @Tags         changelog
// @Produce      json
// @Success      200  {array}  entity.ChangeLogEntry
// @Router       /changelog [get]
func (h *ChangelogHandler) List(c *fiber.Ctx) error {
	entries, err := h.rec.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(entries)
}
