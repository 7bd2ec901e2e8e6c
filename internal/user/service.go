package user

import (
	"strings"
	"time"

	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	"github.com/AndreyLitvishchenko/filmorate/internal/event"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
)

// service implements the Service interface
type service struct {
	repo   Repository
	events event.Repository
	logger *logger.Logger
}

// NewService creates a new user service
func NewService(repo Repository, events event.Repository, log *logger.Logger) Service {
	return &service{
		repo:   repo,
		events: events,
		logger: log.WithComponent("user-service"),
	}
}

func (s *service) CreateUser(req *UserRequest) (*User, error) {
	if err := validateUser(req); err != nil {
		s.logger.Error("User validation failed for login " + req.Login + ": " + err.Error())
		return nil, err
	}

	user := fromRequest(req)
	if err := s.repo.Create(user); err != nil {
		s.logger.Error("Failed to create user " + user.Login + ": " + err.Error())
		return nil, err
	}

	s.logger.Info("User created: " + user.Login + " (ID: " + utils.IntToString(user.ID) + ")")
	return user, nil
}

func (s *service) UpdateUser(req *UserRequest) (*User, error) {
	if err := validateUser(req); err != nil {
		s.logger.Error("User validation failed for login " + req.Login + ": " + err.Error())
		return nil, err
	}

	if _, err := s.repo.FindByID(req.ID); err != nil {
		return nil, err
	}

	user := fromRequest(req)
	if err := s.repo.Update(user); err != nil {
		s.logger.Error("Failed to update user " + utils.IntToString(req.ID) + ": " + err.Error())
		return nil, err
	}

	s.logger.Info("User updated: " + user.Login + " (ID: " + utils.IntToString(user.ID) + ")")
	return user, nil
}

func (s *service) GetUser(id int) (*User, error) {
	return s.repo.FindByID(id)
}

func (s *service) GetAllUsers() ([]*User, error) {
	return s.repo.FindAll()
}

func (s *service) DeleteUser(id int) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("Failed to delete user " + utils.IntToString(id) + ": " + err.Error())
		return err
	}

	s.logger.Info("User deleted: " + utils.IntToString(id))
	return nil
}

func (s *service) AddFriend(userID, friendID int) error {
	if _, err := s.repo.FindByID(userID); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(friendID); err != nil {
		return err
	}

	if err := s.repo.AddFriend(userID, friendID); err != nil {
		s.logger.Error("Failed to add friend " + utils.IntToString(friendID) + " for user " + utils.IntToString(userID) + ": " + err.Error())
		return err
	}

	s.recordEvent(userID, friendID, event.TypeFriend, event.OpAdd)
	s.logger.Info("User " + utils.IntToString(userID) + " added friend " + utils.IntToString(friendID))
	return nil
}

func (s *service) RemoveFriend(userID, friendID int) error {
	if _, err := s.repo.FindByID(userID); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(friendID); err != nil {
		return err
	}

	if err := s.repo.RemoveFriend(userID, friendID); err != nil {
		s.logger.Error("Failed to remove friend " + utils.IntToString(friendID) + " for user " + utils.IntToString(userID) + ": " + err.Error())
		return err
	}

	s.recordEvent(userID, friendID, event.TypeFriend, event.OpRemove)
	s.logger.Info("User " + utils.IntToString(userID) + " removed friend " + utils.IntToString(friendID))
	return nil
}

func (s *service) GetFriends(userID int) ([]*User, error) {
	if _, err := s.repo.FindByID(userID); err != nil {
		return nil, err
	}
	return s.repo.FindFriends(userID)
}

func (s *service) GetFeed(userID int) ([]*event.Event, error) {
	if _, err := s.repo.FindByID(userID); err != nil {
		return nil, err
	}
	return s.events.FindByUserID(userID)
}

// recordEvent appends to the activity feed; a failed append is logged
// but does not fail the mutation it describes
func (s *service) recordEvent(userID, entityID int, eventType, operation string) {
	err := s.events.Append(&event.Event{
		Timestamp: time.Now().UnixMilli(),
		UserID:    userID,
		EventType: eventType,
		Operation: operation,
		EntityID:  entityID,
	})
	if err != nil {
		s.logger.Error("Failed to record " + eventType + " " + operation + " event for user " + utils.IntToString(userID) + ": " + err.Error())
	}
}

func validateUser(req *UserRequest) error {
	if strings.Contains(req.Login, " ") {
		return errs.Validation("login cannot contain spaces")
	}
	if req.Birthday.After(time.Now()) {
		return errs.Validation("birthday cannot be in the future")
	}
	return nil
}

// fromRequest builds the entity, substituting login for a blank name
func fromRequest(req *UserRequest) *User {
	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = req.Login
	}
	return &User{
		ID:       req.ID,
		Email:    req.Email,
		Login:    req.Login,
		Name:     name,
		Birthday: req.Birthday,
	}
}
