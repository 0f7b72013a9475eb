package filestorage

import (
	"context"
	"strings"
)

// Kind indica dónde vive físicamente una imagen. Se decide una sola vez,
// al momento de escribir, y se guarda junto al registro.
type Kind string

const (
	KindLocal  Kind = "local"
	KindRemota Kind = "remota"
)

// StoredImage es el resultado de persistir una imagen nueva.
type StoredImage struct {
	Ref  string // ruta relativa local o clave de objeto
	URL  string
	Size int64
	Kind Kind
}

// ImageStore abstrae el backend de almacenamiento de imágenes.
//
// Exists implementa la política de verificación de cada variante:
// el backend local comprueba el disco, el remoto conserva las referencias
// sin comprobar, y el híbrido comprueba el disco solo para referencias
// que no son URLs completas.
type ImageStore interface {
	Save(ctx context.Context, equipoID, name string, data []byte, contentType string) (StoredImage, error)
	Exists(ref string) bool
	Delete(ref string) error
	PublicURL(ref string) (string, bool)
	Healthy(ctx context.Context) error
	Mode() string
}

// SanitizeEquipoID reduce un equipo_id al subdirectorio seguro donde
// se guardan sus imágenes: solo alfanuméricos.
func SanitizeEquipoID(equipoID string) string {
	var b strings.Builder
	for _, r := range equipoID {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "equipo"
	}
	return b.String()
}

// EsURLCompleta distingue una referencia absoluta de una ruta local.
func EsURLCompleta(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
