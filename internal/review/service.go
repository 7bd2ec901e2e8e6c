package review

import (
	"time"

	"github.com/AndreyLitvishchenko/filmorate/internal/event"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
)

// service implements the Service interface
type service struct {
	repo   Repository
	users  UserService
	films  FilmService
	events event.Repository
	logger *logger.Logger
}

// NewService creates a new review service
func NewService(repo Repository, users UserService, films FilmService, events event.Repository, log *logger.Logger) Service {
	return &service{
		repo:   repo,
		users:  users,
		films:  films,
		events: events,
		logger: log.WithComponent("review-service"),
	}
}

func (s *service) CreateReview(req *ReviewRequest) (*Review, error) {
	if err := s.validateRefs(req); err != nil {
		return nil, err
	}

	review := fromRequest(req)
	if err := s.repo.Create(review); err != nil {
		s.logger.Error("Failed to create review for film " + utils.IntToString(review.FilmID) + ": " + err.Error())
		return nil, err
	}

	s.recordEvent(review.UserID, review.ReviewID, event.OpAdd)
	s.logger.Info("Review created: " + utils.IntToString(review.ReviewID) + " for film " + utils.IntToString(review.FilmID))
	return review, nil
}

func (s *service) UpdateReview(req *ReviewRequest) (*Review, error) {
	if _, err := s.repo.FindByID(req.ReviewID); err != nil {
		return nil, err
	}
	if err := s.validateRefs(req); err != nil {
		return nil, err
	}

	review := fromRequest(req)
	if err := s.repo.Update(review); err != nil {
		s.logger.Error("Failed to update review " + utils.IntToString(req.ReviewID) + ": " + err.Error())
		return nil, err
	}

	updated, err := s.repo.FindByID(req.ReviewID)
	if err != nil {
		return nil, err
	}

	s.recordEvent(updated.UserID, updated.ReviewID, event.OpUpdate)
	s.logger.Info("Review updated: " + utils.IntToString(updated.ReviewID))
	return updated, nil
}

func (s *service) DeleteReview(id int) error {
	review, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("Failed to delete review " + utils.IntToString(id) + ": " + err.Error())
		return err
	}

	s.recordEvent(review.UserID, review.ReviewID, event.OpRemove)
	s.logger.Info("Review deleted: " + utils.IntToString(id))
	return nil
}

func (s *service) GetReview(id int) (*Review, error) {
	return s.repo.FindByID(id)
}

func (s *service) GetReviews(filmID, count int) ([]*Review, error) {
	if filmID > 0 {
		if err := s.films.FilmExists(filmID); err != nil {
			return nil, err
		}
	}
	if count <= 0 {
		count = 10
	}
	return s.repo.FindByFilmID(filmID, count)
}

func (s *service) AddLike(reviewID, userID int) error {
	if err := s.validateReaction(reviewID, userID); err != nil {
		return err
	}

	if err := s.repo.AddReaction(reviewID, userID, true); err != nil {
		s.logger.Error("Failed to add like to review " + utils.IntToString(reviewID) + " by user " + utils.IntToString(userID) + ": " + err.Error())
		return err
	}

	s.logger.Info("User " + utils.IntToString(userID) + " liked review " + utils.IntToString(reviewID))
	return nil
}

func (s *service) AddDislike(reviewID, userID int) error {
	if err := s.validateReaction(reviewID, userID); err != nil {
		return err
	}

	if err := s.repo.AddReaction(reviewID, userID, false); err != nil {
		s.logger.Error("Failed to add dislike to review " + utils.IntToString(reviewID) + " by user " + utils.IntToString(userID) + ": " + err.Error())
		return err
	}

	s.logger.Info("User " + utils.IntToString(userID) + " disliked review " + utils.IntToString(reviewID))
	return nil
}

func (s *service) RemoveReaction(reviewID, userID int) error {
	if err := s.validateReaction(reviewID, userID); err != nil {
		return err
	}

	if err := s.repo.RemoveReaction(reviewID, userID); err != nil {
		s.logger.Error("Failed to remove reaction from review " + utils.IntToString(reviewID) + " by user " + utils.IntToString(userID) + ": " + err.Error())
		return err
	}

	s.logger.Info("User " + utils.IntToString(userID) + " removed reaction from review " + utils.IntToString(reviewID))
	return nil
}

func (s *service) validateRefs(req *ReviewRequest) error {
	if err := s.users.UserExists(*req.UserID); err != nil {
		return err
	}
	return s.films.FilmExists(*req.FilmID)
}

func (s *service) validateReaction(reviewID, userID int) error {
	if _, err := s.repo.FindByID(reviewID); err != nil {
		return err
	}
	return s.users.UserExists(userID)
}

func (s *service) recordEvent(userID, reviewID int, operation string) {
	err := s.events.Append(&event.Event{
		Timestamp: time.Now().UnixMilli(),
		UserID:    userID,
		EventType: event.TypeReview,
		Operation: operation,
		EntityID:  reviewID,
	})
	if err != nil {
		s.logger.Error("Failed to record REVIEW " + operation + " event for user " + utils.IntToString(userID) + ": " + err.Error())
	}
}

func fromRequest(req *ReviewRequest) *Review {
	return &Review{
		ReviewID:   req.ReviewID,
		Content:    req.Content,
		IsPositive: req.IsPositive,
		UserID:     *req.UserID,
		FilmID:     *req.FilmID,
	}
}
