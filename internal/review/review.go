package review

// Review represents a user's review of a film. Useful is the number of
// like reactions minus dislike reactions, derived from the reactions table.
type Review struct {
	ReviewID   int    `json:"reviewId" gorm:"primaryKey;autoIncrement"`
	Content    string `json:"content" gorm:"size:1000;not null"`
	IsPositive *bool  `json:"isPositive" gorm:"not null"`
	UserID     int    `json:"userId" gorm:"not null;index"`
	FilmID     int    `json:"filmId" gorm:"not null;index"`
	Useful     int    `json:"useful" gorm:"->;-:migration"`
}

// Reaction is a (review, user) edge marking the review useful or useless
type Reaction struct {
	ReviewID int  `gorm:"primaryKey"`
	UserID   int  `gorm:"primaryKey"`
	IsLike   bool `gorm:"not null"`
}

// Repository defines the interface for review data access
type Repository interface {
	Create(review *Review) error
	Update(review *Review) error
	Delete(id int) error
	FindByID(id int) (*Review, error)

	// FindByFilmID returns reviews ordered by useful descending;
	// filmID 0 means all films
	FindByFilmID(filmID, count int) ([]*Review, error)

	AddReaction(reviewID, userID int, isLike bool) error
	RemoveReaction(reviewID, userID int) error
}

// UserService is the slice of the user feature the review service needs
type UserService interface {
	UserExists(id int) error
}

// FilmService is the slice of the film feature the review service needs
type FilmService interface {
	FilmExists(id int) error
}

// Service defines the interface for review business logic
type Service interface {
	CreateReview(req *ReviewRequest) (*Review, error)
	UpdateReview(req *ReviewRequest) (*Review, error)
	DeleteReview(id int) error
	GetReview(id int) (*Review, error)
	GetReviews(filmID, count int) ([]*Review, error)

	AddLike(reviewID, userID int) error
	AddDislike(reviewID, userID int) error
	RemoveReaction(reviewID, userID int) error
}

// ReviewRequest represents review creation/update payload
type ReviewRequest struct {
	ReviewID   int    `json:"reviewId"`
	Content    string `json:"content" binding:"required,max=1000"`
	IsPositive *bool  `json:"isPositive" binding:"required"`
	UserID     *int   `json:"userId" binding:"required"`
	FilmID     *int   `json:"filmId" binding:"required"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// TableName returns the table name for GORM
func (Reaction) TableName() string {
	return "review_reactions"
}
