package recommendation

import (
	"strings"

	"github.com/AndreyLitvishchenko/filmorate/internal/film"
	"github.com/AndreyLitvishchenko/filmorate/internal/user"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
)

// service implements the Service interface. It normalizes lenient inputs
// (count, sortBy, by) to a single documented default before delegating to
// the engine, so no call site applies its own ad hoc policy.
type service struct {
	engine *SimilarityEngine
	logger *logger.Logger
}

// NewService creates a new recommendation service
func NewService(users UserReader, films FilmReader, log *logger.Logger) Service {
	return &service{
		engine: NewSimilarityEngine(users, films, log),
		logger: log.WithComponent("recommendation-service"),
	}
}

func (s *service) Recommendations(userID int) ([]*film.Film, error) {
	s.logger.Info("Generating recommendations for user " + utils.IntToString(userID))

	films, err := s.engine.Recommendations(userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generated " + utils.IntToString(len(films)) + " recommendations for user " + utils.IntToString(userID))
	return films, nil
}

func (s *service) CommonFilms(userID, friendID int) ([]*film.Film, error) {
	return s.engine.CommonFilms(userID, friendID)
}

func (s *service) CommonFriends(userID, otherID int) ([]*user.User, error) {
	return s.engine.CommonFriends(userID, otherID)
}

func (s *service) PopularFilms(count, genreID, year int) ([]*film.Film, error) {
	// Non-positive count means "use the default", never an error
	if count < 1 {
		count = DefaultPopularCount
	}
	return s.engine.PopularFilms(count, genreID, year)
}

func (s *service) FilmsByDirector(directorID int, sortBy string) ([]*film.Film, error) {
	// Anything other than "year" sorts by likes
	if sortBy != SortByYear {
		sortBy = SortByLikes
	}
	return s.engine.FilmsByDirector(directorID, sortBy)
}

func (s *service) SearchFilms(query, by string) ([]*film.Film, error) {
	byTitle, byDirector := parseSearchScope(by)
	return s.engine.Search(query, byTitle, byDirector)
}

// parseSearchScope parses a comma-separated scope list in either order.
// An empty or unrecognized scope searches both fields.
func parseSearchScope(by string) (byTitle, byDirector bool) {
	for _, token := range strings.Split(by, ",") {
		switch strings.TrimSpace(strings.ToLower(token)) {
		case SearchByTitle:
			byTitle = true
		case SearchByDirector:
			byDirector = true
		}
	}
	if !byTitle && !byDirector {
		return true, true
	}
	return byTitle, byDirector
}
