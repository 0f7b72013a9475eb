package entities

// Estadisticas agrega contadores sobre el inventario completo.
type Estadisticas struct {
	Total            int            `json:"total"`
	PorEstado        map[string]int `json:"por_estado"`
	PorWindowsUpdate map[string]int `json:"por_windows_update"`
	RevisadosHoy     int            `json:"revisados_hoy"`
	ConProblemas     int            `json:"con_problemas"`
	ConUbicacion     int            `json:"con_ubicacion"`
	ConImagenes      int            `json:"con_imagenes"`
	TotalImagenes    int            `json:"total_imagenes"`
}

// NewEstadisticas devuelve el agregado con todos los contadores en cero,
// incluidos los mapas por valor de enum.
func NewEstadisticas() *Estadisticas {
	return &Estadisticas{
		PorEstado: map[string]int{
			EstadoOperativo:     0,
			EstadoMantenimiento: 0,
			EstadoDanado:        0,
		},
		PorWindowsUpdate: map[string]int{
			WindowsUpdateSi: 0,
			WindowsUpdateNo: 0,
		},
	}
}
