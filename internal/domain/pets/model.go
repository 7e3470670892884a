package pets

// DateLayout es el formato de birthday (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Pet representa el perfil básico de una mascota.
// Los campos opcionales son punteros: nil se guarda como NULL.
type Pet struct {
	ID int64

	Name    string
	Species string
	Breed   *string

	Birthday *string
	Photo    *string
}
