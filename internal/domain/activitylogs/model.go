package activitylogs

// DateLayout es el formato de date (YYYY-MM-DD). El orden de listados es
// lexicográfico sobre este string, por eso se valida.
const DateLayout = "2006-01-02"

// Log es un evento registrado para una mascota.
type Log struct {
	ID    int64
	PetID int64

	Date     string
	Activity string // libre, no se limita a las sugerencias de la UI
	Note     *string
}

// Entry es un Log con los datos de la mascota dueña (LEFT JOIN pets).
type Entry struct {
	Log

	PetName    *string
	PetSpecies *string
	PetBreed   *string
}
