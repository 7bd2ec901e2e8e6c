//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
)

func (suite *IntegrationTestSuite) TestHealthCheck() {
	var health map[string]any
	resp := suite.getJSON("/health", &health)

	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal("healthy", health["status"])
}

func (suite *IntegrationTestSuite) TestReferenceData() {
	var ratings []map[string]any
	resp := suite.getJSON("/mpa", &ratings)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Len(ratings, 5)

	var genres []map[string]any
	resp = suite.getJSON("/genres", &genres)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Len(genres, 6)
}

func (suite *IntegrationTestSuite) TestUserValidation() {
	resp := suite.postJSON("/users", map[string]any{
		"email":    "spaced@example.com",
		"login":    "has spaces",
		"birthday": "1990-03-10",
	}, nil)
	suite.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (suite *IntegrationTestSuite) TestBlankNameFallsBackToLogin() {
	login := uniqueLogin("fallback")
	var created struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	resp := suite.postJSON("/users", map[string]any{
		"email":    login + "@example.com",
		"login":    login,
		"name":     "",
		"birthday": "1990-03-10",
	}, &created)

	suite.Equal(http.StatusCreated, resp.StatusCode)
	suite.Equal(login, created.Name)
}

func (suite *IntegrationTestSuite) TestFriendshipAndFeed() {
	userID := suite.createUser("feed")
	friendID := suite.createUser("feed")

	resp := suite.putJSON(fmt.Sprintf("/users/%d/friends/%d", userID, friendID), nil, nil)
	suite.Equal(http.StatusOK, resp.StatusCode)

	// One-directional: only the requester lists the friend
	var friends []map[string]any
	suite.getJSON(fmt.Sprintf("/users/%d/friends", userID), &friends)
	suite.Len(friends, 1)

	var reverse []map[string]any
	suite.getJSON(fmt.Sprintf("/users/%d/friends", friendID), &reverse)
	suite.Empty(reverse)

	var feed []map[string]any
	resp = suite.getJSON(fmt.Sprintf("/users/%d/feed", userID), &feed)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Require().Len(feed, 1)
	suite.Equal("FRIEND", feed[0]["eventType"])
	suite.Equal("ADD", feed[0]["operation"])
}

func (suite *IntegrationTestSuite) TestCommonFriends() {
	first := suite.createUser("common")
	second := suite.createUser("common")
	shared := suite.createUser("common")

	suite.putJSON(fmt.Sprintf("/users/%d/friends/%d", first, shared), nil, nil)
	suite.putJSON(fmt.Sprintf("/users/%d/friends/%d", second, shared), nil, nil)

	var common []struct {
		ID int `json:"id"`
	}
	resp := suite.getJSON(fmt.Sprintf("/users/%d/friends/common/%d", first, second), &common)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Require().Len(common, 1)
	suite.Equal(shared, common[0].ID)
}

func (suite *IntegrationTestSuite) TestFilmValidation() {
	resp := suite.postJSON("/films", map[string]any{
		"name":        "Too Early",
		"releaseDate": "1890-01-01",
		"duration":    60,
		"mpa":         map[string]any{"id": 1},
	}, nil)
	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	resp = suite.postJSON("/films", map[string]any{
		"name":        "Ghost Rating",
		"releaseDate": "2000-01-01",
		"duration":    60,
		"mpa":         map[string]any{"id": 999999},
	}, nil)
	suite.Equal(http.StatusNotFound, resp.StatusCode)
}

func (suite *IntegrationTestSuite) TestLikesAndRecommendations() {
	target := suite.createUser("rec")
	peer := suite.createUser("rec")

	sharedFilm := suite.createFilm("Shared")
	extraFilm := suite.createFilm("Extra")

	suite.putJSON(fmt.Sprintf("/films/%d/like/%d", sharedFilm, target), nil, nil)
	suite.putJSON(fmt.Sprintf("/films/%d/like/%d", sharedFilm, peer), nil, nil)
	suite.putJSON(fmt.Sprintf("/films/%d/like/%d", extraFilm, peer), nil, nil)

	var recommended []struct {
		ID int `json:"id"`
	}
	resp := suite.getJSON(fmt.Sprintf("/users/%d/recommendations", target), &recommended)
	suite.Equal(http.StatusOK, resp.StatusCode)

	ids := make([]int, 0, len(recommended))
	for _, f := range recommended {
		ids = append(ids, f.ID)
	}
	suite.Contains(ids, extraFilm)
	suite.NotContains(ids, sharedFilm)

	var common []struct {
		ID int `json:"id"`
	}
	resp = suite.getJSON(fmt.Sprintf("/films/common?userId=%d&friendId=%d", target, peer), &common)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Require().Len(common, 1)
	suite.Equal(sharedFilm, common[0].ID)
}

func (suite *IntegrationTestSuite) TestUnknownUserRecommendationsIs404() {
	resp := suite.getJSON("/users/999999/recommendations", nil)
	suite.Equal(http.StatusNotFound, resp.StatusCode)
}

func (suite *IntegrationTestSuite) TestReviewFlow() {
	author := suite.createUser("review")
	reader := suite.createUser("review")
	filmID := suite.createFilm("Reviewed")

	var review struct {
		ReviewID int `json:"reviewId"`
		Useful   int `json:"useful"`
	}
	resp := suite.postJSON("/reviews", map[string]any{
		"content":    "Surprisingly good",
		"isPositive": true,
		"userId":     author,
		"filmId":     filmID,
	}, &review)
	suite.Equal(http.StatusCreated, resp.StatusCode)
	suite.Equal(0, review.Useful)

	resp = suite.putJSON(fmt.Sprintf("/reviews/%d/like/%d", review.ReviewID, reader), nil, nil)
	suite.Equal(http.StatusOK, resp.StatusCode)

	var fetched struct {
		Useful int `json:"useful"`
	}
	suite.getJSON(fmt.Sprintf("/reviews/%d", review.ReviewID), &fetched)
	suite.Equal(1, fetched.Useful)

	resp = suite.delete(fmt.Sprintf("/reviews/%d", review.ReviewID))
	suite.Equal(http.StatusOK, resp.StatusCode)
}

func (suite *IntegrationTestSuite) TestDirectorFilmography() {
	var director struct {
		ID int `json:"id"`
	}
	resp := suite.postJSON("/directors", map[string]any{"name": uniqueLogin("director")}, &director)
	suite.Equal(http.StatusCreated, resp.StatusCode)

	resp = suite.getJSON(fmt.Sprintf("/films/director/%d?sortBy=year", director.ID), nil)
	suite.Equal(http.StatusOK, resp.StatusCode)

	resp = suite.getJSON("/films/director/999999", nil)
	suite.Equal(http.StatusNotFound, resp.StatusCode)
}
