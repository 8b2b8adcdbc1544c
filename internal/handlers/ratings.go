package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/logging"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/models"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/ratings"
)

type RatingsHandler struct {
	Ratings *ratings.Service
}

func (h *RatingsHandler) GetMealRatings(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	return c.JSON(http.StatusOK, h.Ratings.MealRatings(ctx, id))
}

// AddMealRating appends a review. A persistence failure here comes
// back as a 500 so the client can tell the user the review was lost.
func (h *RatingsHandler) AddMealRating(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "ratings.add")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var req struct {
		Rating int    `json:"rating"`
		Text   string `json:"text"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_rating_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Rating < 1 || req.Rating > 5 {
		l.Warn("add_rating_failed", "status", 400, "reason", "rating out of range", "rating", req.Rating)
		return echo.NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	if err := h.Ratings.AddMealRating(ctx, id, models.Review{Rating: req.Rating, Text: req.Text}); err != nil {
		l.Error("add_rating_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save review")
	}

	l.Info("add_rating_success", "meal_id", id, "rating", req.Rating)
	return c.JSON(http.StatusCreated, h.Ratings.MealRatings(ctx, id))
}
