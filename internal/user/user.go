package user

import (
	"github.com/AndreyLitvishchenko/filmorate/internal/event"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
)

// User represents a user of the film catalog
type User struct {
	ID       int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    string     `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Login    string     `json:"login" gorm:"uniqueIndex;not null;size:64"`
	Name     string     `json:"name" gorm:"size:255"`
	Birthday utils.Date `json:"birthday" gorm:"not null"`
}

// Friendship is a directed friend edge: the owner lists the friend,
// the reverse edge is created only by the friend's own request
type Friendship struct {
	UserID   int `gorm:"primaryKey"`
	FriendID int `gorm:"primaryKey"`
}

// Repository defines the interface for user data access
type Repository interface {
	Create(user *User) error
	Update(user *User) error
	FindByID(id int) (*User, error)
	FindAll() ([]*User, error)
	Delete(id int) error

	AddFriend(userID, friendID int) error
	RemoveFriend(userID, friendID int) error
	FindFriends(userID int) ([]*User, error)
}

// Service defines the interface for user business logic
type Service interface {
	CreateUser(req *UserRequest) (*User, error)
	UpdateUser(req *UserRequest) (*User, error)
	GetUser(id int) (*User, error)
	GetAllUsers() ([]*User, error)
	DeleteUser(id int) error

	AddFriend(userID, friendID int) error
	RemoveFriend(userID, friendID int) error
	GetFriends(userID int) ([]*User, error)
	GetFeed(userID int) ([]*event.Event, error)
}

// UserRequest represents user creation/update payload
type UserRequest struct {
	ID       int        `json:"id"`
	Email    string     `json:"email" binding:"required,email"`
	Login    string     `json:"login" binding:"required"`
	Name     string     `json:"name"`
	Birthday utils.Date `json:"birthday" binding:"required"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// TableName returns the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}
