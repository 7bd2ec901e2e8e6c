package repository

import (
	"errors"
	"fmt"

	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	genrePkg "github.com/AndreyLitvishchenko/filmorate/internal/genre"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormGenreRepository implements the genre.Repository interface
type gormGenreRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewGORMGenreRepository creates a new GORM-based genre repository
func NewGORMGenreRepository(db *gorm.DB, log *logger.Logger) genrePkg.Repository {
	return &gormGenreRepository{
		db:     db,
		logger: log.WithComponent("gorm-genre-repository"),
	}
}

func (r *gormGenreRepository) FindAll() ([]*genrePkg.Genre, error) {
	var genres []*genrePkg.Genre
	if err := r.db.Order("id").Find(&genres).Error; err != nil {
		r.logger.Error("Database error listing genres: " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}
	return genres, nil
}

func (r *gormGenreRepository) FindByID(id int) (*genrePkg.Genre, error) {
	var genre genrePkg.Genre

	err := r.db.First(&genre, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("genre", id)
		}

		r.logger.Error("Database error finding genre by ID " + utils.IntToString(id) + ": " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &genre, nil
}

// Seed inserts the reference rows with stable identifiers, skipping any
// that already exist
func (r *gormGenreRepository) Seed(names []string) error {
	for i, name := range names {
		genre := &genrePkg.Genre{ID: i + 1, Name: name}
		err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(genre).Error
		if err != nil {
			r.logger.Error("Failed to seed genre " + name + ": " + err.Error())
			return fmt.Errorf("failed to seed genre: %w", err)
		}
	}
	return nil
}
