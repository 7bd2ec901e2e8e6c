package director

import (
	"testing"

	"github.com/AndreyLitvishchenko/filmorate/config"
	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDirectorRepository is an in-memory implementation of Repository
type mockDirectorRepository struct {
	directors map[int]*Director
	nextID    int
}

func newMockDirectorRepository() *mockDirectorRepository {
	return &mockDirectorRepository{directors: make(map[int]*Director), nextID: 1}
}

func (m *mockDirectorRepository) Create(director *Director) error {
	director.ID = m.nextID
	m.nextID++
	m.directors[director.ID] = director
	return nil
}

func (m *mockDirectorRepository) Update(director *Director) error {
	m.directors[director.ID] = director
	return nil
}

func (m *mockDirectorRepository) FindByID(id int) (*Director, error) {
	director, ok := m.directors[id]
	if !ok {
		return nil, errs.NotFound("director", id)
	}
	return director, nil
}

func (m *mockDirectorRepository) FindAll() ([]*Director, error) {
	directors := make([]*Director, 0, len(m.directors))
	for _, d := range m.directors {
		directors = append(directors, d)
	}
	return directors, nil
}

func (m *mockDirectorRepository) Delete(id int) error {
	delete(m.directors, id)
	return nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&config.LoggingConfig{Level: "error", Format: "text"})
	require.NoError(t, err)
	return log
}

func TestDirectorCRUD(t *testing.T) {
	log := testLogger(t)

	t.Run("Creates a director", func(t *testing.T) {
		svc := NewService(newMockDirectorRepository(), log)

		director, err := svc.CreateDirector(&DirectorRequest{Name: "Christopher Nolan"})

		require.NoError(t, err)
		assert.Equal(t, 1, director.ID)
		assert.Equal(t, "Christopher Nolan", director.Name)
	})

	t.Run("Rejects a blank name", func(t *testing.T) {
		svc := NewService(newMockDirectorRepository(), log)

		_, err := svc.CreateDirector(&DirectorRequest{Name: "   "})

		assert.True(t, errs.IsValidation(err))
	})

	t.Run("Updates an existing director", func(t *testing.T) {
		svc := NewService(newMockDirectorRepository(), log)

		created, err := svc.CreateDirector(&DirectorRequest{Name: "Old Name"})
		require.NoError(t, err)

		updated, err := svc.UpdateDirector(&DirectorRequest{ID: created.ID, Name: "New Name"})
		require.NoError(t, err)
		assert.Equal(t, "New Name", updated.Name)
	})

	t.Run("Updating an unknown director is a not-found error", func(t *testing.T) {
		svc := NewService(newMockDirectorRepository(), log)

		_, err := svc.UpdateDirector(&DirectorRequest{ID: 999999, Name: "Nobody"})

		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("Deletes an existing director", func(t *testing.T) {
		repo := newMockDirectorRepository()
		svc := NewService(repo, log)

		created, err := svc.CreateDirector(&DirectorRequest{Name: "Short Career"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteDirector(created.ID))
		assert.Empty(t, repo.directors)
	})

	t.Run("Deleting an unknown director is a not-found error", func(t *testing.T) {
		svc := NewService(newMockDirectorRepository(), log)

		assert.True(t, errs.IsNotFound(svc.DeleteDirector(999999)))
	})
}
