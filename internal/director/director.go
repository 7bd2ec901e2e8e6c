package director

// Director represents a film director
type Director struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null;size:255"`
}

// Repository defines the interface for director data access
type Repository interface {
	Create(director *Director) error
	Update(director *Director) error
	FindByID(id int) (*Director, error)
	FindAll() ([]*Director, error)
	Delete(id int) error
}

// Service defines the interface for director business logic
type Service interface {
	CreateDirector(req *DirectorRequest) (*Director, error)
	UpdateDirector(req *DirectorRequest) (*Director, error)
	GetDirector(id int) (*Director, error)
	GetAllDirectors() ([]*Director, error)
	DeleteDirector(id int) error
}

// DirectorRequest represents director creation/update payload
type DirectorRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name" binding:"required"`
}

// TableName returns the table name for GORM
func (Director) TableName() string {
	return "directors"
}
