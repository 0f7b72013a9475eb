package entities

// FilaExport es una fila aplanada y formateada para exportación:
// las claves JSON son las etiquetas legibles que espera la planilla.
type FilaExport struct {
	EquipoID            string `json:"Equipo ID"`
	SerialNumber        string `json:"Serial Number"`
	EtiquetaActivo      string `json:"Etiqueta Activo"`
	Responsable         string `json:"Responsable"`
	Cargo               string `json:"Cargo"`
	Estado              string `json:"Estado"`
	WindowsUpdate       string `json:"Windows Update"`
	Ubicacion           string `json:"Ubicación"`
	Notas               string `json:"Notas"`
	ProblemasDetectados string `json:"Problemas Detectados"`
	FechaRevision       string `json:"Fecha Revisión"`
	Revisor             string `json:"Revisor"`
	Imagenes            string `json:"Imágenes"`
}
