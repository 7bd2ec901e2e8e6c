package repository

import (
	"fmt"

	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"gorm.io/gorm"
)

// MaintenanceRepository removes reference edges whose endpoints no longer exist
type MaintenanceRepository interface {
	PruneDanglingEdges() (int64, error)
}

type gormMaintenanceRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewGORMMaintenanceRepository creates a new GORM-based maintenance repository
func NewGORMMaintenanceRepository(db *gorm.DB, log *logger.Logger) MaintenanceRepository {
	return &gormMaintenanceRepository{
		db:     db,
		logger: log.WithComponent("gorm-maintenance-repository"),
	}
}

// PruneDanglingEdges deletes likes, friendships, reactions and association
// rows that point at deleted users, films, genres, directors or reviews.
// Returns the total number of rows removed.
func (r *gormMaintenanceRepository) PruneDanglingEdges() (int64, error) {
	statements := []string{
		"DELETE FROM likes WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.id = likes.user_id)",
		"DELETE FROM likes WHERE NOT EXISTS (SELECT 1 FROM films f WHERE f.id = likes.film_id)",
		"DELETE FROM friendships WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.id = friendships.user_id)",
		"DELETE FROM friendships WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.id = friendships.friend_id)",
		"DELETE FROM film_genres WHERE NOT EXISTS (SELECT 1 FROM films f WHERE f.id = film_genres.film_id)",
		"DELETE FROM film_genres WHERE NOT EXISTS (SELECT 1 FROM genres g WHERE g.id = film_genres.genre_id)",
		"DELETE FROM film_directors WHERE NOT EXISTS (SELECT 1 FROM films f WHERE f.id = film_directors.film_id)",
		"DELETE FROM film_directors WHERE NOT EXISTS (SELECT 1 FROM directors d WHERE d.id = film_directors.director_id)",
		"DELETE FROM review_reactions WHERE NOT EXISTS (SELECT 1 FROM reviews rv WHERE rv.review_id = review_reactions.review_id)",
		"DELETE FROM review_reactions WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.id = review_reactions.user_id)",
		"DELETE FROM events WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.id = events.user_id)",
	}

	var total int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range statements {
			result := tx.Exec(stmt)
			if result.Error != nil {
				return result.Error
			}
			total += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to prune dangling edges: " + err.Error())
		return 0, fmt.Errorf("failed to prune dangling edges: %w", err)
	}

	return total, nil
}
