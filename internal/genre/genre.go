package genre

// Genre represents a film genre from the fixed dictionary
type Genre struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:64"`
}

// Repository defines the interface for genre data access
type Repository interface {
	FindAll() ([]*Genre, error)
	FindByID(id int) (*Genre, error)
	Seed(names []string) error
}

// Service defines the interface for genre business logic
type Service interface {
	GetAllGenres() ([]*Genre, error)
	GetGenre(id int) (*Genre, error)
}

// TableName returns the table name for GORM
func (Genre) TableName() string {
	return "genres"
}
