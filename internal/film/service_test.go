package film

import (
	"testing"
	"time"

	"github.com/AndreyLitvishchenko/filmorate/config"
	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	"github.com/AndreyLitvishchenko/filmorate/internal/event"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFilmRepository is an in-memory implementation of Repository
type mockFilmRepository struct {
	films     map[int]*Film
	likes     map[int][]int // film id -> user ids
	mpa       map[int]bool
	genres    map[int]bool
	directors map[int]bool
	nextID    int
}

func newMockFilmRepository() *mockFilmRepository {
	return &mockFilmRepository{
		films:     make(map[int]*Film),
		likes:     make(map[int][]int),
		mpa:       map[int]bool{1: true, 2: true},
		genres:    map[int]bool{1: true, 2: true},
		directors: map[int]bool{1: true},
		nextID:    1,
	}
}

func (m *mockFilmRepository) Create(film *Film) error {
	film.ID = m.nextID
	m.nextID++
	m.films[film.ID] = film
	return nil
}

func (m *mockFilmRepository) Update(film *Film) error {
	m.films[film.ID] = film
	return nil
}

func (m *mockFilmRepository) FindByID(id int) (*Film, error) {
	film, ok := m.films[id]
	if !ok {
		return nil, errs.NotFound("film", id)
	}
	film.LikesCount = len(m.likes[id])
	return film, nil
}

func (m *mockFilmRepository) FindAll() ([]*Film, error) {
	films := make([]*Film, 0, len(m.films))
	for _, f := range m.films {
		films = append(films, f)
	}
	return films, nil
}

func (m *mockFilmRepository) Delete(id int) error {
	delete(m.films, id)
	delete(m.likes, id)
	return nil
}

func (m *mockFilmRepository) AddLike(filmID, userID int) error {
	for _, id := range m.likes[filmID] {
		if id == userID {
			return nil
		}
	}
	m.likes[filmID] = append(m.likes[filmID], userID)
	return nil
}

func (m *mockFilmRepository) RemoveLike(filmID, userID int) error {
	kept := m.likes[filmID][:0]
	for _, id := range m.likes[filmID] {
		if id != userID {
			kept = append(kept, id)
		}
	}
	m.likes[filmID] = kept
	return nil
}

func (m *mockFilmRepository) LikeCount(filmID int) (int, error) {
	return len(m.likes[filmID]), nil
}

func (m *mockFilmRepository) MpaExists(id int) error {
	if !m.mpa[id] {
		return errs.NotFound("MPA rating", id)
	}
	return nil
}

func (m *mockFilmRepository) GenreExists(id int) error {
	if !m.genres[id] {
		return errs.NotFound("genre", id)
	}
	return nil
}

func (m *mockFilmRepository) DirectorExists(id int) error {
	if !m.directors[id] {
		return errs.NotFound("director", id)
	}
	return nil
}

// mockUserService answers existence checks from a fixed id set
type mockUserService struct {
	users map[int]bool
}

func (m *mockUserService) UserExists(id int) error {
	if !m.users[id] {
		return errs.NotFound("user", id)
	}
	return nil
}

// mockEventRepository records appended events in order
type mockEventRepository struct {
	events []*event.Event
}

func (m *mockEventRepository) Append(e *event.Event) error {
	m.events = append(m.events, e)
	return nil
}

func (m *mockEventRepository) FindByUserID(userID int) ([]*event.Event, error) {
	return m.events, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&config.LoggingConfig{Level: "error", Format: "text"})
	require.NoError(t, err)
	return log
}

func validRequest() *FilmRequest {
	return &FilmRequest{
		Name:        "Interstellar",
		Description: "Space and time",
		ReleaseDate: utils.NewDate(2014, time.November, 7),
		Duration:    169,
		Mpa:         Ref{ID: 1},
		Genres:      []Ref{{ID: 1}, {ID: 2}},
		Directors:   []Ref{{ID: 1}},
	}
}

func TestCreateFilm(t *testing.T) {
	log := testLogger(t)
	users := &mockUserService{users: map[int]bool{1: true}}

	t.Run("Creates a valid film", func(t *testing.T) {
		svc := NewService(newMockFilmRepository(), users, &mockEventRepository{}, log)

		film, err := svc.CreateFilm(validRequest())

		require.NoError(t, err)
		assert.Equal(t, 1, film.ID)
		assert.Len(t, film.Genres, 2)
		assert.Len(t, film.Directors, 1)
	})

	t.Run("Accepts the cinema birthday itself", func(t *testing.T) {
		svc := NewService(newMockFilmRepository(), users, &mockEventRepository{}, log)

		req := validRequest()
		req.ReleaseDate = utils.NewDate(1895, time.December, 28)
		_, err := svc.CreateFilm(req)

		assert.NoError(t, err)
	})

	t.Run("Rejects a release date before the cinema birthday", func(t *testing.T) {
		svc := NewService(newMockFilmRepository(), users, &mockEventRepository{}, log)

		req := validRequest()
		req.ReleaseDate = utils.NewDate(1895, time.December, 27)
		_, err := svc.CreateFilm(req)

		assert.True(t, errs.IsValidation(err))
	})

	t.Run("Rejects an unknown MPA rating", func(t *testing.T) {
		svc := NewService(newMockFilmRepository(), users, &mockEventRepository{}, log)

		req := validRequest()
		req.Mpa = Ref{ID: 99}
		_, err := svc.CreateFilm(req)

		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("Rejects an unknown genre", func(t *testing.T) {
		svc := NewService(newMockFilmRepository(), users, &mockEventRepository{}, log)

		req := validRequest()
		req.Genres = append(req.Genres, Ref{ID: 99})
		_, err := svc.CreateFilm(req)

		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("Deduplicates repeated genre references", func(t *testing.T) {
		svc := NewService(newMockFilmRepository(), users, &mockEventRepository{}, log)

		req := validRequest()
		req.Genres = []Ref{{ID: 1}, {ID: 1}, {ID: 2}, {ID: 1}}
		film, err := svc.CreateFilm(req)

		require.NoError(t, err)
		require.Len(t, film.Genres, 2)
		assert.Equal(t, 1, film.Genres[0].ID)
		assert.Equal(t, 2, film.Genres[1].ID)
	})
}

func TestUpdateFilm(t *testing.T) {
	log := testLogger(t)
	users := &mockUserService{users: map[int]bool{1: true}}

	t.Run("Updates an existing film", func(t *testing.T) {
		svc := NewService(newMockFilmRepository(), users, &mockEventRepository{}, log)

		created, err := svc.CreateFilm(validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.ID = created.ID
		req.Name = "Renamed"
		updated, err := svc.UpdateFilm(req)

		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
	})

	t.Run("Unknown film is a not-found error", func(t *testing.T) {
		svc := NewService(newMockFilmRepository(), users, &mockEventRepository{}, log)

		req := validRequest()
		req.ID = 999999
		_, err := svc.UpdateFilm(req)

		assert.True(t, errs.IsNotFound(err))
	})
}

func TestLikeOperations(t *testing.T) {
	log := testLogger(t)

	setup := func(t *testing.T) (Service, *mockFilmRepository, *mockEventRepository) {
		t.Helper()
		repo := newMockFilmRepository()
		events := &mockEventRepository{}
		users := &mockUserService{users: map[int]bool{1: true, 2: true}}
		svc := NewService(repo, users, events, log)

		_, err := svc.CreateFilm(validRequest())
		require.NoError(t, err)

		return svc, repo, events
	}

	t.Run("Adding a like records a LIKE ADD event", func(t *testing.T) {
		svc, repo, events := setup(t)

		require.NoError(t, svc.AddLike(1, 1))

		assert.Equal(t, []int{1}, repo.likes[1])
		require.Len(t, events.events, 1)
		assert.Equal(t, event.TypeLike, events.events[0].EventType)
		assert.Equal(t, event.OpAdd, events.events[0].Operation)
		assert.Equal(t, 1, events.events[0].UserID)
		assert.Equal(t, 1, events.events[0].EntityID)
	})

	t.Run("Repeated likes from one user count once", func(t *testing.T) {
		svc, repo, _ := setup(t)

		require.NoError(t, svc.AddLike(1, 1))
		require.NoError(t, svc.AddLike(1, 1))

		assert.Equal(t, []int{1}, repo.likes[1])
	})

	t.Run("Removing a like records a LIKE REMOVE event", func(t *testing.T) {
		svc, repo, events := setup(t)

		require.NoError(t, svc.AddLike(1, 2))
		require.NoError(t, svc.RemoveLike(1, 2))

		assert.Empty(t, repo.likes[1])
		require.Len(t, events.events, 2)
		assert.Equal(t, event.OpRemove, events.events[1].Operation)
	})

	t.Run("Unknown film is a not-found error", func(t *testing.T) {
		svc, _, _ := setup(t)

		assert.True(t, errs.IsNotFound(svc.AddLike(999999, 1)))
	})

	t.Run("Unknown user is a not-found error", func(t *testing.T) {
		svc, _, events := setup(t)

		assert.True(t, errs.IsNotFound(svc.AddLike(1, 999999)))
		assert.Empty(t, events.events)
	})
}
