package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"computadores-api/pkg/filestorage"
)

// Estados válidos de un computador.
const (
	EstadoOperativo     = "operativo"
	EstadoMantenimiento = "mantenimiento"
	EstadoDanado        = "dañado"
)

// Valores válidos de la bandera windows_update.
const (
	WindowsUpdateSi = "si"
	WindowsUpdateNo = "no"
)

// Imagen es un elemento del arreglo JSONB `imagenes` de un computador.
// No tiene identidad propia ni tabla. Tipo se fija al escribir y es la
// única fuente de verdad sobre dónde vive el archivo.
type Imagen struct {
	Titulo      string           `json:"titulo"`
	Filename    string           `json:"filename"`
	URL         string           `json:"url"`
	Size        int64            `json:"size,omitempty"`
	FechaSubida time.Time        `json:"fecha_subida"`
	Tipo        filestorage.Kind `json:"tipo,omitempty"`
}

// EsLocal indica si la imagen vive en disco local. Las entradas heredadas
// sin etiqueta se clasifican por la forma de la referencia.
func (i Imagen) EsLocal() bool {
	if i.Tipo != "" {
		return i.Tipo == filestorage.KindLocal
	}
	return !filestorage.EsURLCompleta(i.Filename)
}

// Computador es una fila de la tabla `computadores`: el estado de soporte
// de una máquina física.
type Computador struct {
	ID                  int64        `json:"id"`
	EquipoID            string       `json:"equipo_id"`
	SerialNumber        string       `json:"serial_number"`
	EtiquetaActivo      null.String  `json:"etiqueta_activo"`
	Latitud             null.Float64 `json:"latitud"`
	Longitud            null.Float64 `json:"longitud"`
	DireccionAutomatica null.String  `json:"direccion_automatica"`
	DireccionManual     null.String  `json:"direccion_manual"`
	Responsable         string       `json:"responsable"`
	Cargo               string       `json:"cargo"`
	Estado              string       `json:"estado"`
	WindowsUpdate       string       `json:"windows_update"`
	Imagenes            []Imagen     `json:"imagenes"`
	Notas               null.String  `json:"notas"`
	ProblemasDetectados null.String  `json:"problemas_detectados"`
	FechaRevision       time.Time    `json:"fecha_revision"`
	FechaActualizacion  time.Time    `json:"fecha_actualizacion"`
	Revisor             null.String  `json:"revisor"`
}
