package mpa

// Mpa represents an MPA age rating from the fixed dictionary
type Mpa struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:16"`
}

// Repository defines the interface for MPA rating data access
type Repository interface {
	FindAll() ([]*Mpa, error)
	FindByID(id int) (*Mpa, error)
	Seed(names []string) error
}

// Service defines the interface for MPA rating business logic
type Service interface {
	GetAllMpa() ([]*Mpa, error)
	GetMpa(id int) (*Mpa, error)
}

// TableName returns the table name for GORM
func (Mpa) TableName() string {
	return "mpa"
}
