package ratings

import (
	"context"
	"fmt"
	"math"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/catalog"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/models"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/storage"
)

// MealRatings is the aggregate view for one meal: the locally added
// reviews plus the combined average over baseline and new ratings.
type MealRatings struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
}

// Service merges the seed baseline (rating x review count) with the
// persisted review lists. The baseline itself is never mutated; only
// the stored lists grow, newest first.
type Service struct {
	Store storage.Store
	Key   string
}

func NewService(store storage.Store) *Service {
	return &Service{Store: store, Key: storage.RatingsKey}
}

func (s *Service) all(ctx context.Context) map[int64][]models.Review {
	return storage.Load(ctx, s.Store, s.Key, map[int64][]models.Review{})
}

func (s *Service) MealRatings(ctx context.Context, mealID int64) MealRatings {
	newReviews := s.all(ctx)[mealID]
	if newReviews == nil {
		newReviews = []models.Review{}
	}

	meal, ok := catalog.DefaultMealByID(mealID)
	if !ok {
		return MealRatings{Reviews: []models.Review{}}
	}

	baseCount := meal.Reviews
	baseTotal := meal.Rating * float64(baseCount)

	newTotal := 0
	for _, r := range newReviews {
		newTotal += r.Rating
	}

	count := baseCount + len(newReviews)
	average := 0.0
	if count > 0 {
		average = math.Round((baseTotal+float64(newTotal))/float64(count)*10) / 10
	}

	return MealRatings{
		Reviews:       newReviews,
		AverageRating: average,
		ReviewCount:   count,
	}
}

// AddMealRating prepends the review to the meal's stored list and
// rewrites the full map. Unlike the other stores, a persistence
// failure here is propagated so the caller can warn the user.
func (s *Service) AddMealRating(ctx context.Context, mealID int64, review models.Review) error {
	all := s.all(ctx)
	all[mealID] = append([]models.Review{review}, all[mealID]...)
	if err := storage.Save(ctx, s.Store, s.Key, all); err != nil {
		return fmt.Errorf("ratings: save review for meal %d: %w", mealID, err)
	}
	return nil
}
