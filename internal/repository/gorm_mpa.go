package repository

import (
	"errors"
	"fmt"

	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	mpaPkg "github.com/AndreyLitvishchenko/filmorate/internal/mpa"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormMpaRepository implements the mpa.Repository interface
type gormMpaRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewGORMMpaRepository creates a new GORM-based MPA rating repository
func NewGORMMpaRepository(db *gorm.DB, log *logger.Logger) mpaPkg.Repository {
	return &gormMpaRepository{
		db:     db,
		logger: log.WithComponent("gorm-mpa-repository"),
	}
}

func (r *gormMpaRepository) FindAll() ([]*mpaPkg.Mpa, error) {
	var ratings []*mpaPkg.Mpa
	if err := r.db.Order("id").Find(&ratings).Error; err != nil {
		r.logger.Error("Database error listing MPA ratings: " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}
	return ratings, nil
}

func (r *gormMpaRepository) FindByID(id int) (*mpaPkg.Mpa, error) {
	var rating mpaPkg.Mpa

	err := r.db.First(&rating, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("MPA rating", id)
		}

		r.logger.Error("Database error finding MPA rating by ID " + utils.IntToString(id) + ": " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &rating, nil
}

// Seed inserts the reference rows with stable identifiers, skipping any
// that already exist
func (r *gormMpaRepository) Seed(names []string) error {
	for i, name := range names {
		rating := &mpaPkg.Mpa{ID: i + 1, Name: name}
		err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(rating).Error
		if err != nil {
			r.logger.Error("Failed to seed MPA rating " + name + ": " + err.Error())
			return fmt.Errorf("failed to seed MPA rating: %w", err)
		}
	}
	return nil
}
