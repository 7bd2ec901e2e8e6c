package recommendation

import (
	"github.com/AndreyLitvishchenko/filmorate/internal/film"
	"github.com/AndreyLitvishchenko/filmorate/internal/user"
)

// UserReader is the read-only slice of the entity store the engine uses
// for user data. Implementations must enumerate ids in ascending order:
// every tie-break in the engine is defined on that order.
type UserReader interface {
	ListUserIDs() ([]int, error)
	FindUser(id int) (*user.User, error)
	LikedFilmIDs(userID int) ([]int, error)
	FriendIDs(userID int) ([]int, error)
}

// FilmReader is the read-only slice of the entity store the engine uses
// for film data. FindFilm returns (nil, nil) for an absent id so the
// engine can skip dangling references instead of failing the batch.
type FilmReader interface {
	ListFilms() ([]*film.Film, error)
	FindFilm(id int) (*film.Film, error)
	FilmLikeCount(filmID int) (int, error)
	FilmIDsByGenre(genreID int) ([]int, error)
	FilmIDsByYear(year int) ([]int, error)
	FilmsByDirector(directorID int) ([]*film.Film, error)
	DirectorExists(id int) (bool, error)
}

// Sort orders for director filmographies
const (
	SortByLikes = "likes"
	SortByYear  = "year"
)

// Search scopes
const (
	SearchByTitle    = "title"
	SearchByDirector = "director"
)

// DefaultPopularCount is used when the popular-films count is missing
// or non-positive
const DefaultPopularCount = 10

// Service defines the interface for recommendation and ranking logic
type Service interface {
	Recommendations(userID int) ([]*film.Film, error)
	CommonFilms(userID, friendID int) ([]*film.Film, error)
	CommonFriends(userID, otherID int) ([]*user.User, error)
	PopularFilms(count, genreID, year int) ([]*film.Film, error)
	FilmsByDirector(directorID int, sortBy string) ([]*film.Film, error)
	SearchFilms(query, by string) ([]*film.Film, error)
}
