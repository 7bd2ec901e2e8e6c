package director

import (
	"strings"

	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
)

// service implements the Service interface
type service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new director service
func NewService(repo Repository, log *logger.Logger) Service {
	return &service{
		repo:   repo,
		logger: log.WithComponent("director-service"),
	}
}

func (s *service) CreateDirector(req *DirectorRequest) (*Director, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errs.Validation("director name cannot be empty")
	}

	director := &Director{Name: req.Name}
	if err := s.repo.Create(director); err != nil {
		s.logger.Error("Failed to create director " + req.Name + ": " + err.Error())
		return nil, err
	}

	s.logger.Info("Director created: " + director.Name + " (ID: " + utils.IntToString(director.ID) + ")")
	return director, nil
}

func (s *service) UpdateDirector(req *DirectorRequest) (*Director, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errs.Validation("director name cannot be empty")
	}

	if _, err := s.repo.FindByID(req.ID); err != nil {
		return nil, err
	}

	director := &Director{ID: req.ID, Name: req.Name}
	if err := s.repo.Update(director); err != nil {
		s.logger.Error("Failed to update director " + utils.IntToString(req.ID) + ": " + err.Error())
		return nil, err
	}

	s.logger.Info("Director updated: " + director.Name + " (ID: " + utils.IntToString(director.ID) + ")")
	return director, nil
}

func (s *service) GetDirector(id int) (*Director, error) {
	return s.repo.FindByID(id)
}

func (s *service) GetAllDirectors() ([]*Director, error) {
	return s.repo.FindAll()
}

func (s *service) DeleteDirector(id int) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("Failed to delete director " + utils.IntToString(id) + ": " + err.Error())
		return err
	}

	s.logger.Info("Director deleted: " + utils.IntToString(id))
	return nil
}
