package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/catalog"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/logging"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/models"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/mykafka"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/service/search"
)

type CatalogHandler struct {
	Catalog  *catalog.Service
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

func (h *CatalogHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "catalog_events", fmt.Sprint(event["id"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *CatalogHandler) GetMeals(c echo.Context) error {
	ctx := c.Request().Context()
	meals := h.Catalog.MealsByCategory(ctx, c.QueryParam("category"))
	return c.JSON(http.StatusOK, meals)
}

func (h *CatalogHandler) GetMeal(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_meal")

	id, err := parseID(c)
	if err != nil {
		l.Error("get_meal_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	meal, ok := h.Catalog.MealByID(ctx, id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "meal not found")
	}
	return c.JSON(http.StatusOK, meal)
}

// SaveMeal handles both admin create (no id in body) and admin edit
// (id of an existing meal). Required fields are checked here, the
// store itself does not validate.
func (h *CatalogHandler) SaveMeal(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.save_meal")

	var req struct {
		ID          int64   `json:"id"`
		Name        string  `json:"name"`
		Image       string  `json:"image"`
		Price       float64 `json:"price"`
		Ingredients string  `json:"ingredients"`
		Calories    int     `json:"calories"`
		Category    string  `json:"category"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("save_meal_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.Image == "" || req.Price <= 0 {
		l.Warn("save_meal_failed", "status", 400, "reason", "missing required fields")
		return echo.NewHTTPError(http.StatusBadRequest, "name, image and a positive price are required")
	}

	if id := c.Param("id"); id != "" {
		parsed, err := parseID(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
		}
		req.ID = parsed
	}

	meal, err := h.Catalog.SaveMeal(ctx, models.Meal{
		ID:          req.ID,
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		Ingredients: req.Ingredients,
		Calories:    req.Calories,
		Category:    req.Category,
	})
	if err != nil {
		// In-memory state stays authoritative for this response, the
		// warning tells the client the edit may not survive a restart.
		l.Warn("save_meal_persist_failed", "error", err)
		return c.JSON(http.StatusOK, echo.Map{
			"meal":    meal,
			"warning": "could not persist catalog change",
		})
	}

	h.publish(c, map[string]any{"type": "meal_saved", "id": meal.ID, "name": meal.Name})
	h.indexMeal(c, meal)

	l.Info("save_meal_success", "id", meal.ID)
	return c.JSON(http.StatusOK, echo.Map{"meal": meal})
}

func (h *CatalogHandler) indexMeal(c echo.Context, meal models.Meal) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.IndexMeal(ctx, h.ES, h.Index, meal); err != nil {
		c.Logger().Errorf("ES index error: %v", err)
	}
}

func (h *CatalogHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, h.Catalog.Products(ctx))
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	id, err := parseID(c)
	if err != nil {
		l.Error("get_product_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	product, ok := h.Catalog.ProductByID(ctx, id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) SaveProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.save_product")

	var req struct {
		ID          int64   `json:"id"`
		Name        string  `json:"name"`
		Image       string  `json:"image"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("save_product_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.Image == "" || req.Price <= 0 {
		l.Warn("save_product_failed", "status", 400, "reason", "missing required fields")
		return echo.NewHTTPError(http.StatusBadRequest, "name, image and a positive price are required")
	}

	if id := c.Param("id"); id != "" {
		parsed, err := parseID(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
		}
		req.ID = parsed
	}

	product, err := h.Catalog.SaveProduct(ctx, models.Product{
		ID:          req.ID,
		Name:        req.Name,
		Image:       req.Image,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		l.Warn("save_product_persist_failed", "error", err)
		return c.JSON(http.StatusOK, echo.Map{
			"product": product,
			"warning": "could not persist catalog change",
		})
	}

	h.publish(c, map[string]any{"type": "product_saved", "id": product.ID, "name": product.Name})

	l.Info("save_product_success", "id", product.ID)
	return c.JSON(http.StatusOK, echo.Map{"product": product})
}

func (h *CatalogHandler) GetArticles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Articles())
}

func (h *CatalogHandler) GetArticle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}
	article, ok := h.Catalog.ArticleByID(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "article not found")
	}
	return c.JSON(http.StatusOK, article)
}
