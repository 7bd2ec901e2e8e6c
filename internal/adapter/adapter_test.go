package adapter

import (
	"testing"

	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	"github.com/AndreyLitvishchenko/filmorate/internal/film"
	"github.com/AndreyLitvishchenko/filmorate/internal/user"
	"github.com/stretchr/testify/assert"
)

// stubUserService implements only the methods the adapters call;
// the embedded interface covers the rest
type stubUserService struct {
	user.Service
	users map[int]*user.User
}

func (s *stubUserService) GetUser(id int) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, errs.NotFound("user", id)
	}
	return u, nil
}

type stubFilmService struct {
	film.Service
	films map[int]*film.Film
}

func (s *stubFilmService) GetFilm(id int) (*film.Film, error) {
	f, ok := s.films[id]
	if !ok {
		return nil, errs.NotFound("film", id)
	}
	return f, nil
}

func TestUserExistenceAdapters(t *testing.T) {
	users := &stubUserService{users: map[int]*user.User{
		1: {ID: 1, Login: "andrey"},
	}}

	t.Run("Film-side adapter passes through lookups", func(t *testing.T) {
		adapted := NewUserServiceToFilmUserService(users)

		assert.NoError(t, adapted.UserExists(1))
		assert.True(t, errs.IsNotFound(adapted.UserExists(999999)))
	})

	t.Run("Review-side adapter passes through lookups", func(t *testing.T) {
		adapted := NewUserServiceToReviewUserService(users)

		assert.NoError(t, adapted.UserExists(1))
		assert.True(t, errs.IsNotFound(adapted.UserExists(999999)))
	})
}

func TestFilmExistenceAdapter(t *testing.T) {
	films := &stubFilmService{films: map[int]*film.Film{
		1: {ID: 1, Name: "Interstellar"},
	}}

	adapted := NewFilmServiceToReviewFilmService(films)

	assert.NoError(t, adapted.FilmExists(1))
	assert.True(t, errs.IsNotFound(adapted.FilmExists(999999)))
}
