package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/cart"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/catalog"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/logging"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/models"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/mykafka"
)

type CartHandler struct {
	Cart     *cart.Service
	Catalog  *catalog.Service
	Producer *mykafka.Producer
}

type cartResponse struct {
	Lines   []models.CartLine `json:"lines"`
	Count   int               `json:"count"`
	Total   float64           `json:"total"`
	Warning string            `json:"warning,omitempty"`
}

func newCartResponse(lines []models.CartLine, warning string) cartResponse {
	return cartResponse{
		Lines:   lines,
		Count:   cart.Count(lines),
		Total:   cart.Total(lines),
		Warning: warning,
	}
}

func (h *CartHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "cart_events", fmt.Sprint(event["line_id"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, newCartResponse(h.Cart.Lines(ctx), ""))
}

// AddToCart copies the catalog item's name, price and image onto the
// line at add time; later catalog edits never re-price the cart.
func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req struct {
		Kind           string                   `json:"kind"`
		ItemID         int64                    `json:"item_id"`
		Quantity       int                      `json:"quantity"`
		Customizations *cart.MealCustomizations `json:"customizations"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	payload := cart.AddPayload{
		Kind:           req.Kind,
		ItemID:         req.ItemID,
		Quantity:       req.Quantity,
		Customizations: req.Customizations,
	}

	switch req.Kind {
	case cart.KindMeal:
		meal, ok := h.Catalog.MealByID(ctx, req.ItemID)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "meal not found")
		}
		payload.Name = meal.Name
		payload.Price = meal.Price
		payload.Image = meal.Image
		payload.Ingredients = meal.Ingredients
	case cart.KindProduct:
		product, ok := h.Catalog.ProductByID(ctx, req.ItemID)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		payload.Name = product.Name
		payload.Price = product.Price
		payload.Image = product.Image
	default:
		l.Warn("add_to_cart_failed", "status", 400, "reason", "unknown kind", "kind", req.Kind)
		return echo.NewHTTPError(http.StatusBadRequest, "kind must be meal or product")
	}

	lines, err := h.Cart.Add(ctx, payload)
	warning := ""
	if err != nil {
		l.Warn("cart_persist_failed", "error", err)
		warning = "could not persist cart change"
	}

	h.publish(c, map[string]any{"type": "cart_item_added", "line_id": fmt.Sprintf("%s-%d", req.Kind, req.ItemID)})

	l.Info("add_to_cart_success", "kind", req.Kind, "item_id", req.ItemID)
	return c.JSON(http.StatusOK, newCartResponse(lines, warning))
}

// UpdateQuantity sets the line's quantity; zero or below removes it.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")

	lineID := c.Param("id")
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	lines, err := h.Cart.UpdateQuantity(ctx, lineID, req.Quantity)
	warning := ""
	if err != nil {
		l.Warn("cart_persist_failed", "error", err)
		warning = "could not persist cart change"
	}

	h.publish(c, map[string]any{"type": "cart_quantity_updated", "line_id": lineID, "quantity": req.Quantity})

	return c.JSON(http.StatusOK, newCartResponse(lines, warning))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	if err := h.Cart.Clear(ctx); err != nil {
		l.Warn("cart_persist_failed", "error", err)
	}

	h.publish(c, map[string]any{"type": "cart_cleared", "line_id": ""})

	return c.NoContent(http.StatusNoContent)
}
