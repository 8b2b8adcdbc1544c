package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/cart"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/checkout"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/logging"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/models"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/mykafka"
)

type CheckoutHandler struct {
	Checkout *checkout.Service
	Producer *mykafka.Producer
}

// GetContact prefills the delivery form with the last entered info.
func (h *CheckoutHandler) GetContact(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, h.Checkout.Contact(ctx))
}

// Confirm validates the delivery info, builds the order message and
// returns the messaging deep link. The handoff is initiation only.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.confirm")

	var req models.ContactInfo
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	missing := []string{}
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(req.City) == "" {
		missing = append(missing, "city")
	}
	if len(missing) > 0 {
		l.Warn("checkout_failed", "status", 400, "reason", "missing fields", "fields", missing)
		return echo.NewHTTPError(http.StatusBadRequest, "required: "+strings.Join(missing, ", "))
	}

	lines := h.Checkout.Cart.Lines(ctx)
	if len(lines) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "cart is empty")
	}
	total := cart.Total(lines)

	link, err := h.Checkout.Confirm(ctx, req)
	if err != nil {
		l.Warn("checkout_persist_failed", "error", err)
	}
	if link == "" {
		l.Error("checkout_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build order link")
	}

	pctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(pctx, "order_events", req.Name, map[string]any{
		"type":  "order_initiated",
		"total": total,
		"lines": len(lines),
	}); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}

	l.Info("checkout_success", "lines", len(lines), "total", total)
	return c.JSON(http.StatusOK, echo.Map{"whatsapp_url": link, "total": total})
}
