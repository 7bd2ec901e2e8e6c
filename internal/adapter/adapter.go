package adapter

import (
	"github.com/AndreyLitvishchenko/filmorate/internal/film"
	"github.com/AndreyLitvishchenko/filmorate/internal/review"
	"github.com/AndreyLitvishchenko/filmorate/internal/user"
)

// UserServiceToFilmUserService adapts user.Service to film.UserService
type UserServiceToFilmUserService struct {
	service user.Service
}

// NewUserServiceToFilmUserService creates a new adapter
func NewUserServiceToFilmUserService(s user.Service) film.UserService {
	return &UserServiceToFilmUserService{
		service: s,
	}
}

func (a *UserServiceToFilmUserService) UserExists(id int) error {
	_, err := a.service.GetUser(id)
	return err
}

// UserServiceToReviewUserService adapts user.Service to review.UserService
type UserServiceToReviewUserService struct {
	service user.Service
}

// NewUserServiceToReviewUserService creates a new adapter
func NewUserServiceToReviewUserService(s user.Service) review.UserService {
	return &UserServiceToReviewUserService{
		service: s,
	}
}

func (a *UserServiceToReviewUserService) UserExists(id int) error {
	_, err := a.service.GetUser(id)
	return err
}

// FilmServiceToReviewFilmService adapts film.Service to review.FilmService
type FilmServiceToReviewFilmService struct {
	service film.Service
}

// NewFilmServiceToReviewFilmService creates a new adapter
func NewFilmServiceToReviewFilmService(s film.Service) review.FilmService {
	return &FilmServiceToReviewFilmService{
		service: s,
	}
}

func (a *FilmServiceToReviewFilmService) FilmExists(id int) error {
	_, err := a.service.GetFilm(id)
	return err
}
