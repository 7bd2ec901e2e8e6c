package film

import (
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
)

// Film represents a film in the catalog. LikesCount is derived from the
// likes table and never stored on the row itself.
type Film struct {
	ID          int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"not null;size:255"`
	Description string     `json:"description" gorm:"size:200"`
	ReleaseDate utils.Date `json:"releaseDate" gorm:"not null"`
	Duration    int        `json:"duration" gorm:"not null"`
	MpaID       int        `json:"-" gorm:"not null;index"`
	Mpa         Mpa        `json:"mpa" gorm:"foreignKey:MpaID"`
	Genres      []Genre    `json:"genres" gorm:"many2many:film_genres"`
	Directors   []Director `json:"directors" gorm:"many2many:film_directors"`
	LikesCount  int        `json:"likesCount" gorm:"-"`
}

// Mpa represents the MPA age rating (forward declaration for association)
type Mpa struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

// Genre represents a film genre (forward declaration for association)
type Genre struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

// Director represents a film director (forward declaration for association)
type Director struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

// Like is a (film, user) edge recording that the user liked the film
type Like struct {
	FilmID int `gorm:"primaryKey"`
	UserID int `gorm:"primaryKey"`
}

// Repository defines the interface for film data access
type Repository interface {
	Create(film *Film) error
	Update(film *Film) error
	FindByID(id int) (*Film, error)
	FindAll() ([]*Film, error)
	Delete(id int) error

	AddLike(filmID, userID int) error
	RemoveLike(filmID, userID int) error
	LikeCount(filmID int) (int, error)

	// Existence checks used during create/update validation
	MpaExists(id int) error
	GenreExists(id int) error
	DirectorExists(id int) error
}

// UserService is the slice of the user feature the film service needs
type UserService interface {
	UserExists(id int) error
}

// Service defines the interface for film business logic
type Service interface {
	CreateFilm(req *FilmRequest) (*Film, error)
	UpdateFilm(req *FilmRequest) (*Film, error)
	GetFilm(id int) (*Film, error)
	GetAllFilms() ([]*Film, error)
	DeleteFilm(id int) error

	AddLike(filmID, userID int) error
	RemoveLike(filmID, userID int) error
}

// FilmRequest represents film creation/update payload
type FilmRequest struct {
	ID          int        `json:"id"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"max=200"`
	ReleaseDate utils.Date `json:"releaseDate" binding:"required"`
	Duration    int        `json:"duration" binding:"required,gt=0"`
	Mpa         Ref        `json:"mpa" binding:"required"`
	Genres      []Ref      `json:"genres"`
	Directors   []Ref      `json:"directors"`
}

// Ref is an id-only reference to a catalog entity in request payloads
type Ref struct {
	ID int `json:"id" binding:"required"`
}

// TableName returns the table name for GORM
func (Film) TableName() string {
	return "films"
}

// TableName returns the table name for GORM
func (Mpa) TableName() string {
	return "mpa"
}

// TableName returns the table name for GORM
func (Genre) TableName() string {
	return "genres"
}

// TableName returns the table name for GORM
func (Director) TableName() string {
	return "directors"
}

// TableName returns the table name for GORM
func (Like) TableName() string {
	return "likes"
}
