package catalog

import (
	"context"
	"time"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/models"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/storage"
)

// Service serves the catalog. A persisted non-empty override list
// fully replaces the seed data; otherwise the seed is used as-is.
// Articles have no editor and always come from the seed.
type Service struct {
	Store storage.Store

	now func() time.Time
}

func NewService(store storage.Store) *Service {
	return &Service{Store: store, now: time.Now}
}

func (s *Service) Meals(ctx context.Context) []models.Meal {
	meals := storage.Load(ctx, s.Store, storage.MealsKey, []models.Meal(nil))
	if len(meals) == 0 {
		return DefaultMeals
	}
	return meals
}

func (s *Service) MealByID(ctx context.Context, id int64) (models.Meal, bool) {
	for _, m := range s.Meals(ctx) {
		if m.ID == id {
			return m, true
		}
	}
	return models.Meal{}, false
}

// MealsByCategory filters the listing; an empty or "all" category
// returns everything.
func (s *Service) MealsByCategory(ctx context.Context, category string) []models.Meal {
	meals := s.Meals(ctx)
	if category == "" || category == "all" {
		return meals
	}
	filtered := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if m.Category == category {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// SaveMeal updates the meal in place when the id matches an existing
// entry, merging field by field so the baseline rating and review
// count survive edits. Without an id it assigns a timestamp-derived
// one and prepends. The whole override list is rewritten either way.
func (s *Service) SaveMeal(ctx context.Context, m models.Meal) (models.Meal, error) {
	// Copy before editing: Meals may be serving the seed slice itself,
	// and the seed must stay pristine for fallback and baseline reads.
	meals := append([]models.Meal(nil), s.Meals(ctx)...)

	if m.ID != 0 {
		for i := range meals {
			if meals[i].ID == m.ID {
				meals[i] = mergeMeal(meals[i], m)
				m = meals[i]
				return m, storage.Save(ctx, s.Store, storage.MealsKey, meals)
			}
		}
	}

	m.ID = s.now().UnixMilli()
	meals = append([]models.Meal{m}, meals...)
	return m, storage.Save(ctx, s.Store, storage.MealsKey, meals)
}

// mergeMeal overlays the edit on the previous record, new value wins
// when present. Rating and review baseline are never editable.
func mergeMeal(old, edit models.Meal) models.Meal {
	merged := old
	if edit.Name != "" {
		merged.Name = edit.Name
	}
	if edit.Image != "" {
		merged.Image = edit.Image
	}
	if edit.Price > 0 {
		merged.Price = edit.Price
	}
	if edit.Ingredients != "" {
		merged.Ingredients = edit.Ingredients
	}
	if edit.Calories > 0 {
		merged.Calories = edit.Calories
	}
	if edit.Category != "" {
		merged.Category = edit.Category
	}
	return merged
}

func (s *Service) Products(ctx context.Context) []models.Product {
	products := storage.Load(ctx, s.Store, storage.ProductsKey, []models.Product(nil))
	if len(products) == 0 {
		return DefaultProducts
	}
	return products
}

func (s *Service) ProductByID(ctx context.Context, id int64) (models.Product, bool) {
	for _, p := range s.Products(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Service) SaveProduct(ctx context.Context, p models.Product) (models.Product, error) {
	products := append([]models.Product(nil), s.Products(ctx)...)

	if p.ID != 0 {
		for i := range products {
			if products[i].ID == p.ID {
				products[i] = mergeProduct(products[i], p)
				p = products[i]
				return p, storage.Save(ctx, s.Store, storage.ProductsKey, products)
			}
		}
	}

	p.ID = s.now().UnixMilli()
	products = append([]models.Product{p}, products...)
	return p, storage.Save(ctx, s.Store, storage.ProductsKey, products)
}

func mergeProduct(old, edit models.Product) models.Product {
	merged := old
	if edit.Name != "" {
		merged.Name = edit.Name
	}
	if edit.Image != "" {
		merged.Image = edit.Image
	}
	if edit.Price > 0 {
		merged.Price = edit.Price
	}
	if edit.Description != "" {
		merged.Description = edit.Description
	}
	return merged
}

func (s *Service) Articles() []models.Article {
	return DefaultArticles
}

func (s *Service) ArticleByID(id int64) (models.Article, bool) {
	for _, a := range DefaultArticles {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// DefaultMealByID looks up the seed entry regardless of overrides.
// The rating aggregator reads its baseline from here.
func DefaultMealByID(id int64) (models.Meal, bool) {
	for _, m := range DefaultMeals {
		if m.ID == id {
			return m, true
		}
	}
	return models.Meal{}, false
}
