package sqlite

type PetModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"not null"`
	Species  string `gorm:"not null"`
	Breed    *string
	Birthday *string
	Photo    *string
}

func (PetModel) TableName() string { return "pets" }

type ActivityLogModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Date     string `gorm:"not null"`
	PetID    int64  `gorm:"not null;index"`
	Activity string `gorm:"not null"`
	Note     *string
}

func (ActivityLogModel) TableName() string { return "activity_logs" }

// entryRow es el resultado del LEFT JOIN activity_logs -> pets.
type entryRow struct {
	ID         int64   `gorm:"column:id"`
	Date       string  `gorm:"column:date"`
	PetID      int64   `gorm:"column:pet_id"`
	Activity   string  `gorm:"column:activity"`
	Note       *string `gorm:"column:note"`
	PetName    *string `gorm:"column:pet_name"`
	PetSpecies *string `gorm:"column:pet_species"`
	PetBreed   *string `gorm:"column:pet_breed"`
}

type statsRow struct {
	Name     string  `gorm:"column:name"`
	Activity *string `gorm:"column:activity"`
	Count    int64   `gorm:"column:count"`
}
