package repository

import (
	"fmt"

	eventPkg "github.com/AndreyLitvishchenko/filmorate/internal/event"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"gorm.io/gorm"
)

// gormEventRepository implements the event.Repository interface
type gormEventRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewGORMEventRepository creates a new GORM-based event repository
func NewGORMEventRepository(db *gorm.DB, log *logger.Logger) eventPkg.Repository {
	return &gormEventRepository{
		db:     db,
		logger: log.WithComponent("gorm-event-repository"),
	}
}

func (r *gormEventRepository) Append(event *eventPkg.Event) error {
	if err := r.db.Create(event).Error; err != nil {
		r.logger.Error("Failed to append event for user " + utils.IntToString(event.UserID) + ": " + err.Error())
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

// FindByUserID returns the user's events oldest first
func (r *gormEventRepository) FindByUserID(userID int) ([]*eventPkg.Event, error) {
	var events []*eventPkg.Event
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp ASC, event_id ASC").
		Find(&events).Error
	if err != nil {
		r.logger.Error("Database error listing events for user " + utils.IntToString(userID) + ": " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}

	return events, nil
}
