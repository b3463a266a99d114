// Package ident genera identificadores únicos por colección.
//
// Dos esquemas: Sequential deriva el ID del tamaño actual de la colección y
// solo es seguro si se invoca con el candado de la colección tomado (dos
// creaciones simultáneas sobre el mismo snapshot colisionarían); Timestamped
// añade un sufijo aleatorio al milisegundo para resistir creaciones en ráfaga.
package ident

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sequential devuelve "PREFIX-00n" con n = count+1, rellenado a 3 dígitos.
// Llamar únicamente bajo el candado de la colección correspondiente.
func Sequential(prefix string, count int) string {
	return fmt.Sprintf("%s-%03d", prefix, count+1)
}

// Timestamped devuelve "prefix-<unixmilli>-<sufijo>" con un sufijo UUID corto.
// El sufijo evita colisiones de entradas creadas en el mismo milisegundo.
func Timestamped(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.New().String()[:8])
}
