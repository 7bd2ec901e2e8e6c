package repository

import (
	"errors"
	"fmt"

	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	filmPkg "github.com/AndreyLitvishchenko/filmorate/internal/film"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormFilmRepository implements the film.Repository interface
type gormFilmRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewGORMFilmRepository creates a new GORM-based film repository
func NewGORMFilmRepository(db *gorm.DB, log *logger.Logger) filmPkg.Repository {
	return &gormFilmRepository{
		db:     db,
		logger: log.WithComponent("gorm-film-repository"),
	}
}

func (r *gormFilmRepository) Create(film *filmPkg.Film) error {
	// Genre and director rows already exist, only the join rows are written
	err := r.db.Omit("Genres.*", "Directors.*", "Mpa").Create(film).Error
	if err != nil {
		r.logger.Error("Failed to create film " + film.Name + ": " + err.Error())
		return fmt.Errorf("failed to create film: %w", err)
	}
	return nil
}

func (r *gormFilmRepository) Update(film *filmPkg.Film) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&filmPkg.Film{ID: film.ID}).
			Select("name", "description", "release_date", "duration", "mpa_id").
			Updates(map[string]any{
				"name":         film.Name,
				"description":  film.Description,
				"release_date": film.ReleaseDate,
				"duration":     film.Duration,
				"mpa_id":       film.MpaID,
			}).Error
		if err != nil {
			return err
		}

		if err := tx.Model(film).Association("Genres").Replace(film.Genres); err != nil {
			return err
		}
		return tx.Model(film).Association("Directors").Replace(film.Directors)
	})
	if err != nil {
		r.logger.Error("Failed to update film " + utils.IntToString(film.ID) + ": " + err.Error())
		return fmt.Errorf("failed to update film: %w", err)
	}
	return nil
}

func (r *gormFilmRepository) FindByID(id int) (*filmPkg.Film, error) {
	var film filmPkg.Film

	err := r.db.
		Preload("Mpa").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.id") }).
		Preload("Directors", func(db *gorm.DB) *gorm.DB { return db.Order("directors.id") }).
		First(&film, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("film", id)
		}

		r.logger.Error("Database error finding film by ID " + utils.IntToString(id) + ": " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}

	count, err := r.LikeCount(id)
	if err != nil {
		return nil, err
	}
	film.LikesCount = count

	return &film, nil
}

func (r *gormFilmRepository) FindAll() ([]*filmPkg.Film, error) {
	var films []*filmPkg.Film

	err := r.db.
		Preload("Mpa").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.id") }).
		Preload("Directors", func(db *gorm.DB) *gorm.DB { return db.Order("directors.id") }).
		Order("films.id").
		Find(&films).Error
	if err != nil {
		r.logger.Error("Database error listing films: " + err.Error())
		return nil, fmt.Errorf("database error: %w", err)
	}

	for _, film := range films {
		count, err := r.LikeCount(film.ID)
		if err != nil {
			return nil, err
		}
		film.LikesCount = count
	}

	return films, nil
}

// Delete removes the film row together with its like and association
// join rows in one transaction
func (r *gormFilmRepository) Delete(id int) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("film_id = ?", id).Delete(&filmPkg.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM film_genres WHERE film_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM film_directors WHERE film_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&filmPkg.Film{}, id).Error
	})
	if err != nil {
		r.logger.Error("Failed to delete film " + utils.IntToString(id) + ": " + err.Error())
		return fmt.Errorf("failed to delete film: %w", err)
	}
	return nil
}

func (r *gormFilmRepository) AddLike(filmID, userID int) error {
	like := &filmPkg.Like{FilmID: filmID, UserID: userID}

	// Repeating a like is a no-op, not an error
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
	if err != nil {
		r.logger.Error("Failed to add like for film " + utils.IntToString(filmID) + ": " + err.Error())
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

func (r *gormFilmRepository) RemoveLike(filmID, userID int) error {
	err := r.db.Where("film_id = ? AND user_id = ?", filmID, userID).Delete(&filmPkg.Like{}).Error
	if err != nil {
		r.logger.Error("Failed to remove like for film " + utils.IntToString(filmID) + ": " + err.Error())
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

func (r *gormFilmRepository) LikeCount(filmID int) (int, error) {
	var count int64
	err := r.db.Model(&filmPkg.Like{}).Where("film_id = ?", filmID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("database error: %w", err)
	}
	return int(count), nil
}

func (r *gormFilmRepository) MpaExists(id int) error {
	return r.exists(&filmPkg.Mpa{}, "MPA rating", id)
}

func (r *gormFilmRepository) GenreExists(id int) error {
	return r.exists(&filmPkg.Genre{}, "genre", id)
}

func (r *gormFilmRepository) DirectorExists(id int) error {
	return r.exists(&filmPkg.Director{}, "director", id)
}

func (r *gormFilmRepository) exists(model any, entity string, id int) error {
	var count int64
	if err := r.db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return errs.NotFound(entity, id)
	}
	return nil
}
