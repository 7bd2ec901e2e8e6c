package film

import (
	"time"

	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	"github.com/AndreyLitvishchenko/filmorate/internal/event"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
)

// cinemaBirthday is the earliest acceptable release date
var cinemaBirthday = utils.NewDate(1895, time.December, 28)

// service implements the Service interface
type service struct {
	repo   Repository
	users  UserService
	events event.Repository
	logger *logger.Logger
}

// NewService creates a new film service
func NewService(repo Repository, users UserService, events event.Repository, log *logger.Logger) Service {
	return &service{
		repo:   repo,
		users:  users,
		events: events,
		logger: log.WithComponent("film-service"),
	}
}

func (s *service) CreateFilm(req *FilmRequest) (*Film, error) {
	if err := s.validateFilm(req); err != nil {
		s.logger.Error("Film validation failed for " + req.Name + ": " + err.Error())
		return nil, err
	}

	film := fromRequest(req)
	if err := s.repo.Create(film); err != nil {
		s.logger.Error("Failed to create film " + req.Name + ": " + err.Error())
		return nil, err
	}

	s.logger.Info("Film created: " + film.Name + " (ID: " + utils.IntToString(film.ID) + ")")
	return s.repo.FindByID(film.ID)
}

func (s *service) UpdateFilm(req *FilmRequest) (*Film, error) {
	if err := s.validateFilm(req); err != nil {
		s.logger.Error("Film validation failed for " + req.Name + ": " + err.Error())
		return nil, err
	}

	if _, err := s.repo.FindByID(req.ID); err != nil {
		return nil, err
	}

	film := fromRequest(req)
	if err := s.repo.Update(film); err != nil {
		s.logger.Error("Failed to update film " + utils.IntToString(req.ID) + ": " + err.Error())
		return nil, err
	}

	s.logger.Info("Film updated: " + film.Name + " (ID: " + utils.IntToString(film.ID) + ")")
	return s.repo.FindByID(film.ID)
}

func (s *service) GetFilm(id int) (*Film, error) {
	return s.repo.FindByID(id)
}

func (s *service) GetAllFilms() ([]*Film, error) {
	return s.repo.FindAll()
}

func (s *service) DeleteFilm(id int) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("Failed to delete film " + utils.IntToString(id) + ": " + err.Error())
		return err
	}

	s.logger.Info("Film deleted: " + utils.IntToString(id))
	return nil
}

func (s *service) AddLike(filmID, userID int) error {
	if _, err := s.repo.FindByID(filmID); err != nil {
		return err
	}
	if err := s.users.UserExists(userID); err != nil {
		return err
	}

	if err := s.repo.AddLike(filmID, userID); err != nil {
		s.logger.Error("Failed to add like to film " + utils.IntToString(filmID) + " by user " + utils.IntToString(userID) + ": " + err.Error())
		return err
	}

	s.recordEvent(userID, filmID, event.OpAdd)
	s.logger.Info("User " + utils.IntToString(userID) + " liked film " + utils.IntToString(filmID))
	return nil
}

func (s *service) RemoveLike(filmID, userID int) error {
	if _, err := s.repo.FindByID(filmID); err != nil {
		return err
	}
	if err := s.users.UserExists(userID); err != nil {
		return err
	}

	if err := s.repo.RemoveLike(filmID, userID); err != nil {
		s.logger.Error("Failed to remove like from film " + utils.IntToString(filmID) + " by user " + utils.IntToString(userID) + ": " + err.Error())
		return err
	}

	s.recordEvent(userID, filmID, event.OpRemove)
	s.logger.Info("User " + utils.IntToString(userID) + " removed like from film " + utils.IntToString(filmID))
	return nil
}

func (s *service) recordEvent(userID, filmID int, operation string) {
	err := s.events.Append(&event.Event{
		Timestamp: time.Now().UnixMilli(),
		UserID:    userID,
		EventType: event.TypeLike,
		Operation: operation,
		EntityID:  filmID,
	})
	if err != nil {
		s.logger.Error("Failed to record LIKE " + operation + " event for user " + utils.IntToString(userID) + ": " + err.Error())
	}
}

func (s *service) validateFilm(req *FilmRequest) error {
	if req.ReleaseDate.Before(cinemaBirthday.Time) {
		return errs.Validation("release date cannot be earlier than 1895-12-28")
	}
	if err := s.repo.MpaExists(req.Mpa.ID); err != nil {
		return err
	}
	for _, id := range dedupeIDs(req.Genres) {
		if err := s.repo.GenreExists(id); err != nil {
			return err
		}
	}
	for _, id := range dedupeIDs(req.Directors) {
		if err := s.repo.DirectorExists(id); err != nil {
			return err
		}
	}
	return nil
}

func fromRequest(req *FilmRequest) *Film {
	film := &Film{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate,
		Duration:    req.Duration,
		MpaID:       req.Mpa.ID,
	}
	for _, id := range dedupeIDs(req.Genres) {
		film.Genres = append(film.Genres, Genre{ID: id})
	}
	for _, id := range dedupeIDs(req.Directors) {
		film.Directors = append(film.Directors, Director{ID: id})
	}
	return film
}

// dedupeIDs keeps the first occurrence of each referenced id in order
func dedupeIDs(refs []Ref) []int {
	seen := make(map[int]bool, len(refs))
	var ids []int
	for _, ref := range refs {
		if !seen[ref.ID] {
			seen[ref.ID] = true
			ids = append(ids, ref.ID)
		}
	}
	return ids
}
