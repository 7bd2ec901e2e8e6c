package recommendation

import (
	"sort"
	"strings"

	"github.com/AndreyLitvishchenko/filmorate/internal/errs"
	"github.com/AndreyLitvishchenko/filmorate/internal/film"
	"github.com/AndreyLitvishchenko/filmorate/internal/user"
	"github.com/AndreyLitvishchenko/filmorate/internal/utils"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
)

// SimilarityEngine derives recommendations and rankings from like-sets
// and friend-sets. It is stateless: every call rebuilds its snapshot from
// the readers and discards it with the response.
type SimilarityEngine struct {
	users  UserReader
	films  FilmReader
	logger *logger.Logger
}

// NewSimilarityEngine creates a new like-set similarity engine
func NewSimilarityEngine(users UserReader, films FilmReader, log *logger.Logger) *SimilarityEngine {
	return &SimilarityEngine{
		users:  users,
		films:  films,
		logger: log.WithComponent("similarity-engine"),
	}
}

// Recommendations returns films liked by the most similar user that the
// target user has not liked. Similarity is intersection cardinality of
// like-sets; ties go to the lowest user id. A user with no overlapping
// peer gets an empty list, not an error.
func (e *SimilarityEngine) Recommendations(userID int) ([]*film.Film, error) {
	if err := e.requireUser(userID); err != nil {
		return nil, err
	}

	ids, err := e.users.ListUserIDs()
	if err != nil {
		return nil, err
	}

	// Fresh snapshot of every user's like-set, never cached between calls
	likes := make(map[int]map[int]bool, len(ids))
	for _, id := range ids {
		likeSet, err := e.likeSet(id)
		if err != nil {
			return nil, err
		}
		likes[id] = likeSet
	}

	target := likes[userID]
	mostSimilar, bestScore := 0, 0
	for _, id := range ids {
		if id == userID {
			continue
		}
		// Strict > keeps the first (lowest-id) candidate on ties
		if score := intersectionSize(target, likes[id]); score > bestScore {
			mostSimilar, bestScore = id, score
		}
	}

	if bestScore == 0 {
		e.logger.Info("No similar users found for user " + utils.IntToString(userID))
		return []*film.Film{}, nil
	}

	var recommendedIDs []int
	for filmID := range likes[mostSimilar] {
		if !target[filmID] {
			recommendedIDs = append(recommendedIDs, filmID)
		}
	}
	sort.Ints(recommendedIDs)

	e.logger.Debug("Found " + utils.IntToString(len(recommendedIDs)) + " recommended films for user " + utils.IntToString(userID))
	return e.mapFilms(recommendedIDs)
}

// CommonFilms returns films both users liked, most popular first.
// Popularity is each film's global like count, not its standing within
// the intersection.
func (e *SimilarityEngine) CommonFilms(userID, friendID int) ([]*film.Film, error) {
	if err := e.requireUser(userID); err != nil {
		return nil, err
	}
	if err := e.requireUser(friendID); err != nil {
		return nil, err
	}

	mine, err := e.likeSet(userID)
	if err != nil {
		return nil, err
	}
	theirIDs, err := e.users.LikedFilmIDs(friendID)
	if err != nil {
		return nil, err
	}

	var commonIDs []int
	for _, filmID := range theirIDs {
		if mine[filmID] {
			commonIDs = append(commonIDs, filmID)
		}
	}
	sort.Ints(commonIDs)

	films, err := e.mapFilms(commonIDs)
	if err != nil {
		return nil, err
	}

	sortByLikesDesc(films)
	return films, nil
}

// CommonFriends returns users present in both friend-sets
func (e *SimilarityEngine) CommonFriends(userID, otherID int) ([]*user.User, error) {
	if err := e.requireUser(userID); err != nil {
		return nil, err
	}
	if err := e.requireUser(otherID); err != nil {
		return nil, err
	}

	mine, err := e.users.FriendIDs(userID)
	if err != nil {
		return nil, err
	}
	theirs, err := e.users.FriendIDs(otherID)
	if err != nil {
		return nil, err
	}

	mineSet := make(map[int]bool, len(mine))
	for _, id := range mine {
		mineSet[id] = true
	}

	var commonIDs []int
	for _, id := range theirs {
		if mineSet[id] {
			commonIDs = append(commonIDs, id)
		}
	}
	sort.Ints(commonIDs)

	friends := make([]*user.User, 0, len(commonIDs))
	for _, id := range commonIDs {
		u, err := e.users.FindUser(id)
		if err != nil {
			return nil, err
		}
		if u == nil {
			e.logger.Warn("Skipping dangling friend reference " + utils.IntToString(id))
			continue
		}
		friends = append(friends, u)
	}
	return friends, nil
}

// PopularFilms ranks films by like count descending, restricted to the
// given genre and release year when either filter is set. Filters are
// conjunctive. count must already be normalized to a positive value.
func (e *SimilarityEngine) PopularFilms(count, genreID, year int) ([]*film.Film, error) {
	films, err := e.films.ListFilms()
	if err != nil {
		return nil, err
	}

	if genreID > 0 {
		allowed, err := e.films.FilmIDsByGenre(genreID)
		if err != nil {
			return nil, err
		}
		films = filterFilms(films, allowed)
	}
	if year > 0 {
		allowed, err := e.films.FilmIDsByYear(year)
		if err != nil {
			return nil, err
		}
		films = filterFilms(films, allowed)
	}

	if err := e.attachLikeCounts(films); err != nil {
		return nil, err
	}
	sortByLikesDesc(films)

	if len(films) > count {
		films = films[:count]
	}
	return films, nil
}

// FilmsByDirector returns a director's filmography sorted by likes
// descending or release date ascending. An unknown director is an error;
// an empty filmography is not.
func (e *SimilarityEngine) FilmsByDirector(directorID int, sortBy string) ([]*film.Film, error) {
	exists, err := e.films.DirectorExists(directorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NotFound("director", directorID)
	}

	films, err := e.films.FilmsByDirector(directorID)
	if err != nil {
		return nil, err
	}
	if err := e.attachLikeCounts(films); err != nil {
		return nil, err
	}

	if sortBy == SortByYear {
		sort.SliceStable(films, func(i, j int) bool {
			if !films[i].ReleaseDate.Equal(films[j].ReleaseDate.Time) {
				return films[i].ReleaseDate.Before(films[j].ReleaseDate.Time)
			}
			return films[i].ID < films[j].ID
		})
	} else {
		sortByLikesDesc(films)
	}
	return films, nil
}

// Search matches the query as a case-insensitive substring of the film
// title and/or any of its directors' names, deduplicated by film id and
// ranked by like count descending
func (e *SimilarityEngine) Search(query string, byTitle, byDirector bool) ([]*film.Film, error) {
	if strings.TrimSpace(query) == "" {
		return []*film.Film{}, nil
	}

	films, err := e.films.ListFilms()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]*film.Film, 0)
	for _, f := range films {
		if byTitle && strings.Contains(strings.ToLower(f.Name), q) {
			matched = append(matched, f)
			continue
		}
		if byDirector && directorMatches(f, q) {
			matched = append(matched, f)
		}
	}

	if err := e.attachLikeCounts(matched); err != nil {
		return nil, err
	}
	sortByLikesDesc(matched)
	return matched, nil
}

func (e *SimilarityEngine) requireUser(id int) error {
	u, err := e.users.FindUser(id)
	if err != nil {
		return err
	}
	if u == nil {
		e.logger.Warn("User with ID " + utils.IntToString(id) + " not found")
		return errs.NotFound("user", id)
	}
	return nil
}

func (e *SimilarityEngine) likeSet(userID int) (map[int]bool, error) {
	ids, err := e.users.LikedFilmIDs(userID)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// mapFilms resolves film ids to records with like counts attached,
// skipping ids whose film was deleted after the edge was recorded
func (e *SimilarityEngine) mapFilms(ids []int) ([]*film.Film, error) {
	films := make([]*film.Film, 0, len(ids))
	for _, id := range ids {
		f, err := e.films.FindFilm(id)
		if err != nil {
			return nil, err
		}
		if f == nil {
			e.logger.Warn("Skipping dangling film reference " + utils.IntToString(id))
			continue
		}
		count, err := e.films.FilmLikeCount(id)
		if err != nil {
			return nil, err
		}
		f.LikesCount = count
		films = append(films, f)
	}
	return films, nil
}

func (e *SimilarityEngine) attachLikeCounts(films []*film.Film) error {
	for _, f := range films {
		count, err := e.films.FilmLikeCount(f.ID)
		if err != nil {
			return err
		}
		f.LikesCount = count
	}
	return nil
}

func intersectionSize(a, b map[int]bool) int {
	// Iterate the smaller set
	if len(b) < len(a) {
		a, b = b, a
	}
	size := 0
	for id := range a {
		if b[id] {
			size++
		}
	}
	return size
}

func filterFilms(films []*film.Film, allowedIDs []int) []*film.Film {
	allowed := make(map[int]bool, len(allowedIDs))
	for _, id := range allowedIDs {
		allowed[id] = true
	}
	filtered := films[:0]
	for _, f := range films {
		if allowed[f.ID] {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

func directorMatches(f *film.Film, q string) bool {
	for _, d := range f.Directors {
		if strings.Contains(strings.ToLower(d.Name), q) {
			return true
		}
	}
	return false
}

// sortByLikesDesc orders by like count descending with ascending film id
// as the documented tie-break
func sortByLikesDesc(films []*film.Film) {
	sort.SliceStable(films, func(i, j int) bool {
		if films[i].LikesCount != films[j].LikesCount {
			return films[i].LikesCount > films[j].LikesCount
		}
		return films[i].ID < films[j].ID
	})
}
