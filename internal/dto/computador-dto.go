package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

// ImagenInputDTO es un elemento del arreglo `imagenes` enviado en un
// create/update. O bien trae un payload inline (Base64) o bien una
// referencia a un archivo ya guardado (Filename/URL).
type ImagenInputDTO struct {
	Titulo      string     `json:"titulo"`
	Base64      string     `json:"base64"`
	Filename    string     `json:"filename"`
	URL         string     `json:"url"`
	Size        int64      `json:"size"`
	FechaSubida *time.Time `json:"fecha_subida"`
	Tipo        string     `json:"tipo"`
}

type CreateComputadorDTO struct {
	EquipoID            string           `json:"equipo_id" validate:"required"`
	SerialNumber        string           `json:"serial_number" validate:"required"`
	EtiquetaActivo      null.String      `json:"etiqueta_activo"`
	Latitud             null.Float64     `json:"latitud" validate:"omitempty,min=-90,max=90"`
	Longitud            null.Float64     `json:"longitud" validate:"omitempty,min=-180,max=180"`
	DireccionAutomatica null.String      `json:"direccion_automatica"`
	DireccionManual     null.String      `json:"direccion_manual"`
	Responsable         string           `json:"responsable" validate:"required"`
	Cargo               string           `json:"cargo" validate:"required"`
	Estado              string           `json:"estado" validate:"required,oneof=operativo mantenimiento dañado"`
	WindowsUpdate       string           `json:"windows_update" validate:"required,oneof=si no"`
	Imagenes            []ImagenInputDTO `json:"imagenes"`
	Notas               null.String      `json:"notas"`
	ProblemasDetectados null.String      `json:"problemas_detectados"`
	FechaRevision       *time.Time       `json:"fecha_revision"`
	Revisor             null.String      `json:"revisor"`
}

// UpdateComputadorDTO reemplaza el registro completo, incluido el arreglo
// de imágenes.
type UpdateComputadorDTO struct {
	EquipoID            string           `json:"equipo_id" validate:"required"`
	SerialNumber        string           `json:"serial_number" validate:"required"`
	EtiquetaActivo      null.String      `json:"etiqueta_activo"`
	Latitud             null.Float64     `json:"latitud" validate:"omitempty,min=-90,max=90"`
	Longitud            null.Float64     `json:"longitud" validate:"omitempty,min=-180,max=180"`
	DireccionAutomatica null.String      `json:"direccion_automatica"`
	DireccionManual     null.String      `json:"direccion_manual"`
	Responsable         string           `json:"responsable" validate:"required"`
	Cargo               string           `json:"cargo" validate:"required"`
	Estado              string           `json:"estado" validate:"required,oneof=operativo mantenimiento dañado"`
	WindowsUpdate       string           `json:"windows_update" validate:"required,oneof=si no"`
	Imagenes            []ImagenInputDTO `json:"imagenes"`
	Notas               null.String      `json:"notas"`
	ProblemasDetectados null.String      `json:"problemas_detectados"`
	FechaRevision       *time.Time       `json:"fecha_revision"`
	Revisor             null.String      `json:"revisor"`
}

// ListFilterDTO son los filtros opcionales del listado: estado por igualdad,
// el resto por subcadena sin distinguir mayúsculas.
type ListFilterDTO struct {
	Estado       string
	Responsable  string
	EquipoID     string
	SerialNumber string
	Revisor      string
}

type CreateComputadorResponseDTO struct {
	ID                int64  `json:"id"`
	EquipoID          string `json:"equipo_id"`
	SerialNumber      string `json:"serial_number"`
	ImagenesGuardadas int    `json:"imagenes_guardadas"`
	Message           string `json:"message"`
}
