package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrBusy              = errors.New("colección ocupada, reintente")
	ErrStorageIO         = errors.New("error de E/S del almacén de registros")
	ErrDuplicate         = errors.New("recurso duplicado")
)
