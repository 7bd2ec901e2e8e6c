package repository

import (
	"errors"
	"fmt"

	directorPkg "github.com/AndreyLitvishchenko/filmorate/internal/director"
	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"gorm.io/gorm"
)

// gormDirectorRepository implements the director.Repository interface
type gormDirectorRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewGORMDirectorRepository creates a new GORM-based director repository
func NewGORMDirectorRepository(db *gorm.DB, log *logger.Logger) directorPkg.Repository {
	return &gormDirectorRepository{
		db:     db,
		logger: log.WithComponent("gorm-director-repository"),
	}
}

func (r *gormDirectorRepository) Create(director *directorPkg.Director) error {
	if err := r.db.Create(director).Error; err != nil {
		r.logger.Error("Failed to create director " + director.Name + ": " + err.Error())
		return fmt.Errorf("failed to create director: %w", err)
	}
	return nil
}

func (r *gormDirectorRepository) Update(director *directorPkg.Director) error {
	if err := r.db.Save(director).Error; err != nil {
		r.logger.Error("Failed to update director " + utils.IntToString(director.ID) + ": " + err.Error())
		return fmt.Errorf("failed to update director: %w", err)
	}
	return nil
}

func (r *gormDirectorRepository) FindByID(id int) (*directorPkg.Director, error) {
	var director directorPkg.Director

	err := r.db.First(&director, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("director", id)
		}

		r.logger.Error("Database error finding director by ID " + utils.IntToString(id) + ": " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &director, nil
}

func (r *gormDirectorRepository) FindAll() ([]*directorPkg.Director, error) {
	var directors []*directorPkg.Director
	if err := r.db.Order("id").Find(&directors).Error; err != nil {
		r.logger.Error("Database error listing directors: " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}
	return directors, nil
}

// Delete removes the director row together with its film join rows
func (r *gormDirectorRepository) Delete(id int) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM film_directors WHERE director_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&directorPkg.Director{}, id).Error
	})
	if err != nil {
		r.logger.Error("Failed to delete director " + utils.IntToString(id) + ": " + err.Error())
		return fmt.Errorf("failed to delete director: %w", err)
	}
	return nil
}
