package repository

import (
	"errors"
	"fmt"

	filmPkg "github.com/AndreyLitvishchenko/filmorate/internal/film"
	"github.com/AndreyLitvishchenko/filmorate/internal/recommendation"
	userPkg "github.com/AndreyLitvishchenko/filmorate/internal/user"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"gorm.io/gorm"
)

// gormUserReader implements the recommendation.UserReader interface
type gormUserReader struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewGORMUserReader creates a read-only user view for the recommendation engine
func NewGORMUserReader(db *gorm.DB, log *logger.Logger) recommendation.UserReader {
	return &gormUserReader{
		db:     db,
		logger: log.WithComponent("gorm-user-reader"),
	}
}

func (r *gormUserReader) ListUserIDs() ([]int, error) {
	var ids []int
	err := r.db.Model(&userPkg.User{}).Order("id").Pluck("id", &ids).Error
	if err != nil {
		r.logger.Error("Database error listing user ids: " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}
	return ids, nil
}

func (r *gormUserReader) FindUser(id int) (*userPkg.User, error) {
	var user userPkg.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (r *gormUserReader) LikedFilmIDs(userID int) ([]int, error) {
	var ids []int
	err := r.db.Model(&filmPkg.Like{}).
		Where("user_id = ?", userID).
		Order("film_id").
		Pluck("film_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return ids, nil
}

func (r *gormUserReader) FriendIDs(userID int) ([]int, error) {
	var ids []int
	err := r.db.Model(&userPkg.Friendship{}).
		Where("user_id = ?", userID).
		Order("friend_id").
		Pluck("friend_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return ids, nil
}

// gormFilmReader implements the recommendation.FilmReader interface
type gormFilmReader struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewGORMFilmReader creates a read-only film view for the recommendation engine
func NewGORMFilmReader(db *gorm.DB, log *logger.Logger) recommendation.FilmReader {
	return &gormFilmReader{
		db:     db,
		logger: log.WithComponent("gorm-film-reader"),
	}
}

func (r *gormFilmReader) preloaded() *gorm.DB {
	return r.db.
		Preload("Mpa").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.id") }).
		Preload("Directors", func(db *gorm.DB) *gorm.DB { return db.Order("directors.id") })
}

func (r *gormFilmReader) ListFilms() ([]*filmPkg.Film, error) {
	var films []*filmPkg.Film
	err := r.preloaded().Order("films.id").Find(&films).Error
	if err != nil {
		r.logger.Error("Database error listing films: " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}
	return films, nil
}

func (r *gormFilmReader) FindFilm(id int) (*filmPkg.Film, error) {
	var film filmPkg.Film
	err := r.preloaded().First(&film, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &film, nil
}

func (r *gormFilmReader) FilmLikeCount(filmID int) (int, error) {
	var count int64
	err := r.db.Model(&filmPkg.Like{}).Where("film_id = ?", filmID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("database error: %w", err)
	}
	return int(count), nil
}

func (r *gormFilmReader) FilmIDsByGenre(genreID int) ([]int, error) {
	var ids []int
	err := r.db.Table("film_genres").
		Where("genre_id = ?", genreID).
		Order("film_id").
		Pluck("film_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return ids, nil
}

func (r *gormFilmReader) FilmIDsByYear(year int) ([]int, error) {
	var ids []int
	err := r.db.Model(&filmPkg.Film{}).
		Where("EXTRACT(YEAR FROM release_date) = ?", year).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return ids, nil
}

func (r *gormFilmReader) FilmsByDirector(directorID int) ([]*filmPkg.Film, error) {
	var films []*filmPkg.Film
	err := r.preloaded().
		Joins("JOIN film_directors fd ON fd.film_id = films.id").
		Where("fd.director_id = ?", directorID).
		Order("films.id").
		Find(&films).Error
	if err != nil {
		r.logger.Error("Database error listing films by director: " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}
	return films, nil
}

func (r *gormFilmReader) DirectorExists(id int) (bool, error) {
	var count int64
	err := r.db.Model(&filmPkg.Director{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("database error: %w", err)
	}
	return count > 0, nil
}
