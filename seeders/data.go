package seeders

type computadorDemo struct {
	EquipoID        string
	SerialNumber    string
	EtiquetaActivo  *string
	Latitud         *float64
	Longitud        *float64
	DireccionManual *string
	Responsable     string
	Cargo           string
	Estado          string
	WindowsUpdate   string
	Notas           *string
	Revisor         *string
}

func str(s string) *string   { return &s }
func flt(f float64) *float64 { return &f }

var computadoresDemo = []computadorDemo{
	{
		EquipoID:        "PC-001",
		SerialNumber:    "SN-4F8812",
		EtiquetaActivo:  str("ACT-0001"),
		Latitud:         flt(4.60971),
		Longitud:        flt(-74.08175),
		DireccionManual: str("Sede principal, piso 3"),
		Responsable:     "Ana Rodríguez",
		Cargo:           "Analista de soporte",
		Estado:          "operativo",
		WindowsUpdate:   "si",
		Revisor:         str("Carlos Méndez"),
	},
	{
		EquipoID:        "PC-002",
		SerialNumber:    "SN-7A2291",
		DireccionManual: str("Bodega norte"),
		Responsable:     "Luis Pérez",
		Cargo:           "Técnico de campo",
		Estado:          "mantenimiento",
		WindowsUpdate:   "no",
		Notas:           str("Pendiente cambio de disco"),
	},
	{
		EquipoID:      "PC-003",
		SerialNumber:  "SN-9C1034",
		Responsable:   "María Gómez",
		Cargo:         "Coordinadora",
		Estado:        "dañado",
		WindowsUpdate: "no",
		Notas:         str("Fuente quemada, a la espera de repuesto"),
		Revisor:       str("Carlos Méndez"),
	},
}
