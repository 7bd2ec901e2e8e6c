package mpa

import (
	"testing"

	"github.com/AndreyLitvishchenko/filmorate/config"
	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMpaRepository is an in-memory implementation of Repository
type mockMpaRepository struct {
	ratings map[int]*Mpa
}

func (m *mockMpaRepository) FindAll() ([]*Mpa, error) {
	ratings := make([]*Mpa, 0, len(m.ratings))
	for id := 1; id <= len(m.ratings); id++ {
		ratings = append(ratings, m.ratings[id])
	}
	return ratings, nil
}

func (m *mockMpaRepository) FindByID(id int) (*Mpa, error) {
	rating, ok := m.ratings[id]
	if !ok {
		return nil, errs.NotFound("MPA rating", id)
	}
	return rating, nil
}

func (m *mockMpaRepository) Seed(names []string) error {
	for i, name := range names {
		m.ratings[i+1] = &Mpa{ID: i + 1, Name: name}
	}
	return nil
}

func TestMpaService(t *testing.T) {
	log, err := logger.NewLogger(&config.LoggingConfig{Level: "error", Format: "text"})
	require.NoError(t, err)

	repo := &mockMpaRepository{ratings: make(map[int]*Mpa)}
	require.NoError(t, repo.Seed([]string{"G", "PG", "PG-13", "R", "NC-17"}))
	svc := NewService(repo, log)

	t.Run("Lists all ratings in id order", func(t *testing.T) {
		ratings, err := svc.GetAllMpa()
		require.NoError(t, err)
		require.Len(t, ratings, 5)
		assert.Equal(t, "G", ratings[0].Name)
		assert.Equal(t, "NC-17", ratings[4].Name)
	})

	t.Run("Finds a rating by id", func(t *testing.T) {
		rating, err := svc.GetMpa(3)
		require.NoError(t, err)
		assert.Equal(t, "PG-13", rating.Name)
	})

	t.Run("Unknown rating is a not-found error", func(t *testing.T) {
		_, err := svc.GetMpa(999999)
		assert.True(t, errs.IsNotFound(err))
	})
}
