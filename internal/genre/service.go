package genre

import (
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
)

// service implements the Service interface
type service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new genre service
func NewService(repo Repository, log *logger.Logger) Service {
	return &service{
		repo:   repo,
		logger: log.WithComponent("genre-service"),
	}
}

func (s *service) GetAllGenres() ([]*Genre, error) {
	return s.repo.FindAll()
}

func (s *service) GetGenre(id int) (*Genre, error) {
	return s.repo.FindByID(id)
}
