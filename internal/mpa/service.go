package mpa

import (
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
)

// service implements the Service interface
type service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new MPA rating service
func NewService(repo Repository, log *logger.Logger) Service {
	return &service{
		repo:   repo,
		logger: log.WithComponent("mpa-service"),
	}
}

func (s *service) GetAllMpa() ([]*Mpa, error) {
	return s.repo.FindAll()
}

func (s *service) GetMpa(id int) (*Mpa, error) {
	return s.repo.FindByID(id)
}
