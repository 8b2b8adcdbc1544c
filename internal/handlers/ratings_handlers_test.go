package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/ratings"
)

func TestAddMealRatingAndAggregate(t *testing.T) {
	h := &RatingsHandler{Ratings: ratings.NewService(initTestStore(t))}

	rec, c := doJSON(t, http.MethodPost, "/api/v1/meals/1/ratings", map[string]any{"rating": 5, "text": "great"})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.AddMealRating(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ratings.MealRatings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 4.1, resp.AverageRating)
	require.Equal(t, 10, resp.ReviewCount)
	require.Len(t, resp.Reviews, 1)
}

func TestAddMealRatingOutOfRange(t *testing.T) {
	h := &RatingsHandler{Ratings: ratings.NewService(initTestStore(t))}

	for _, rating := range []int{0, 6} {
		_, c := doJSON(t, http.MethodPost, "/api/v1/meals/1/ratings", map[string]any{"rating": rating})
		c.SetParamNames("id")
		c.SetParamValues("1")
		err := h.AddMealRating(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok, "expected HTTPError")
		require.Equal(t, http.StatusBadRequest, he.Code)
	}
}

func TestGetMealRatingsEmpty(t *testing.T) {
	h := &RatingsHandler{Ratings: ratings.NewService(initTestStore(t))}

	rec, c := doJSON(t, http.MethodGet, "/api/v1/meals/5/ratings", nil)
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.GetMealRatings(c))

	var resp ratings.MealRatings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 0.0, resp.AverageRating)
	require.Equal(t, 0, resp.ReviewCount)
}
