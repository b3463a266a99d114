package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/orders"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger    *ledger.UseCase
	Orders    *orders.UseCase
	Suppliers *usecase.SupplierUseCase
	Changelog *audit.Recorder
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	inventoryHandler := NewInventoryHandler(deps.Ledger)
	inv := app.Group("/inventory")
	inv.Get("/", inventoryHandler.List)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Put("/name/:name", inventoryHandler.UpdateByName)
	inv.Put("/:id", inventoryHandler.UpdateByID)

	orderHandler := NewOrderHandler(deps.Orders)
	ord := app.Group("/orders")
	ord.Get("/", orderHandler.List)
	ord.Post("/", orderHandler.Create)
	ord.Put("/:id", orderHandler.UpdateStatus)

	supplierHandler := NewSupplierHandler(deps.Suppliers)
	sup := app.Group("/suppliers")
	sup.Get("/", supplierHandler.List)
	sup.Post("/", supplierHandler.Create)
	sup.Put("/:id", supplierHandler.Update)

	changelogHandler := NewChangelogHandler(deps.Changelog)
	app.Get("/changelog", changelogHandler.List)
}
