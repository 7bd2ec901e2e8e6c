package repository

import (
	"errors"
	"fmt"

	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	"github.com/AndreyLitvishchenko/filmorate/internal/event"
	"github.com/AndreyLitvishchenko/filmorate/internal/film"
	userPkg "github.com/AndreyLitvishchenko/filmorate/internal/user"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormUserRepository implements the user.Repository interface
type gormUserRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewGORMUserRepository creates a new GORM-based user repository
func NewGORMUserRepository(db *gorm.DB, log *logger.Logger) userPkg.Repository {
	return &gormUserRepository{
		db:     db,
		logger: log.WithComponent("gorm-user-repository"),
	}
}

func (r *gormUserRepository) Create(user *userPkg.User) error {
	if err := r.db.Create(user).Error; err != nil {
		r.logger.Error("Failed to create user " + user.Login + ": " + err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *gormUserRepository) Update(user *userPkg.User) error {
	if err := r.db.Save(user).Error; err != nil {
		r.logger.Error("Failed to update user " + utils.IntToString(user.ID) + ": " + err.Error())
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *gormUserRepository) FindByID(id int) (*userPkg.User, error) {
	var user userPkg.User

	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("user", id)
		}

		r.logger.Error("Database error finding user by ID " + utils.IntToString(id) + ": " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &user, nil
}

func (r *gormUserRepository) FindAll() ([]*userPkg.User, error) {
	var users []*userPkg.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		r.logger.Error("Database error listing users: " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}
	return users, nil
}

// Delete removes the user row together with its like, friendship and
// event edges in one transaction
func (r *gormUserRepository) Delete(id int) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&film.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR friend_id = ?", id, id).Delete(&userPkg.Friendship{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&event.Event{}).Error; err != nil {
			return err
		}
		return tx.Delete(&userPkg.User{}, id).Error
	})
	if err != nil {
		r.logger.Error("Failed to delete user " + utils.IntToString(id) + ": " + err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *gormUserRepository) AddFriend(userID, friendID int) error {
	edge := &userPkg.Friendship{UserID: userID, FriendID: friendID}

	// Repeating an add is a no-op, not an error
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
	if err != nil {
		r.logger.Error("Failed to add friend edge " + utils.IntToString(userID) + " -> " + utils.IntToString(friendID) + ": " + err.Error())
		return fmt.Errorf("failed to add friend: %w", err)
	}
	return nil
}

func (r *gormUserRepository) RemoveFriend(userID, friendID int) error {
	err := r.db.Where("user_id = ? AND friend_id = ?", userID, friendID).Delete(&userPkg.Friendship{}).Error
	if err != nil {
		r.logger.Error("Failed to remove friend edge " + utils.IntToString(userID) + " -> " + utils.IntToString(friendID) + ": " + err.Error())
		return fmt.Errorf("failed to remove friend: %w", err)
	}
	return nil
}

func (r *gormUserRepository) FindFriends(userID int) ([]*userPkg.User, error) {
	var friends []*userPkg.User

	err := r.db.
		Joins("JOIN friendships f ON f.friend_id = users.id").
		Where("f.user_id = ?", userID).
		Order("users.id").
		Find(&friends).Error
	if err != nil {
		r.logger.Error("Database error listing friends of user " + utils.IntToString(userID) + ": " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}

	return friends, nil
}
