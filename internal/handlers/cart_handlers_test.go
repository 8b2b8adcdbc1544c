package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/cart"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/catalog"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/checkout"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/storage"
)

func initTestStore(t *testing.T) *storage.GormStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	store, err := storage.NewGormStore(db)
	require.NoError(t, err)
	return store
}

func newCartHandler(t *testing.T) *CartHandler {
	store := initTestStore(t)
	return &CartHandler{
		Cart:    cart.NewService(store),
		Catalog: catalog.NewService(store),
	}
}

func doJSON(t *testing.T, method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	e := echo.New()
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestAddToCartMergesRepeatAdditions(t *testing.T) {
	h := newCartHandler(t)

	load := map[string]any{"kind": "meal", "item_id": 1, "quantity": 1,
		"customizations": map[string]any{"special_instructions": ""}}

	rec, c := doJSON(t, http.MethodPost, "/api/v1/cart", load)
	require.NoError(t, h.AddToCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	load["quantity"] = 2
	rec, c = doJSON(t, http.MethodPost, "/api/v1/cart", load)
	require.NoError(t, h.AddToCart(c))

	var resp cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Lines, 1)
	require.Equal(t, 3, resp.Lines[0].Quantity)
	require.Equal(t, 3, resp.Count)
	require.Equal(t, 3*65.0, resp.Total)
}

func TestAddToCartCopiesPriceAtAddTime(t *testing.T) {
	h := newCartHandler(t)

	rec, c := doJSON(t, http.MethodPost, "/api/v1/cart", map[string]any{"kind": "product", "item_id": 3})
	require.NoError(t, h.AddToCart(c))

	var resp cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 45.0, resp.Lines[0].Price)
	require.Equal(t, "Shaker Bottle 700ml", resp.Lines[0].Name)
}

func TestAddToCartUnknownItem(t *testing.T) {
	h := newCartHandler(t)

	_, c := doJSON(t, http.MethodPost, "/api/v1/cart", map[string]any{"kind": "meal", "item_id": 9999})
	err := h.AddToCart(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestAddToCartRejectsUnknownKind(t *testing.T) {
	h := newCartHandler(t)

	_, c := doJSON(t, http.MethodPost, "/api/v1/cart", map[string]any{"kind": "subscription", "item_id": 1})
	err := h.AddToCart(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	h := newCartHandler(t)

	rec, c := doJSON(t, http.MethodPost, "/api/v1/cart", map[string]any{"kind": "product", "item_id": 1, "quantity": 2})
	require.NoError(t, h.AddToCart(c))

	var resp cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	lineID := resp.Lines[0].ID

	rec, c = doJSON(t, http.MethodPatch, "/api/v1/cart/"+lineID, map[string]any{"quantity": 0})
	c.SetParamNames("id")
	c.SetParamValues(lineID)
	require.NoError(t, h.UpdateQuantity(c))

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp.Lines)
	require.Equal(t, 0, resp.Count)
}

func TestClearCart(t *testing.T) {
	h := newCartHandler(t)

	_, c := doJSON(t, http.MethodPost, "/api/v1/cart", map[string]any{"kind": "meal", "item_id": 2})
	require.NoError(t, h.AddToCart(c))

	rec, c := doJSON(t, http.MethodDelete, "/api/v1/cart", nil)
	require.NoError(t, h.ClearCart(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, c = doJSON(t, http.MethodGet, "/api/v1/cart", nil)
	require.NoError(t, h.GetCart(c))

	var resp cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp.Lines)
}

func TestCheckoutValidatesRequiredFields(t *testing.T) {
	store := initTestStore(t)
	cartSvc := cart.NewService(store)
	h := &CheckoutHandler{Checkout: checkout.NewService(store, cartSvc, "https://wa.me/212600000000")}

	_, c := doJSON(t, http.MethodPost, "/api/v1/checkout", map[string]any{"name": "Sara", "city": "Rabat"})
	err := h.Confirm(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
	require.Contains(t, he.Message, "address")
}

func TestCheckoutReturnsDeepLinkAndClearsCart(t *testing.T) {
	store := initTestStore(t)
	cartSvc := cart.NewService(store)
	catalogSvc := catalog.NewService(store)
	cartHandler := &CartHandler{Cart: cartSvc, Catalog: catalogSvc}
	h := &CheckoutHandler{Checkout: checkout.NewService(store, cartSvc, "https://wa.me/212600000000")}

	_, c := doJSON(t, http.MethodPost, "/api/v1/cart", map[string]any{"kind": "meal", "item_id": 4, "quantity": 2})
	require.NoError(t, cartHandler.AddToCart(c))

	rec, c := doJSON(t, http.MethodPost, "/api/v1/checkout",
		map[string]any{"name": "Sara", "address": "12 Rue X", "city": "Casablanca"})
	require.NoError(t, h.Confirm(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		WhatsappURL string  `json:"whatsapp_url"`
		Total       float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.WhatsappURL, "wa.me")
	require.Equal(t, 178.0, resp.Total)

	ctx := c.Request().Context()
	require.Empty(t, cartSvc.Lines(ctx))
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	store := initTestStore(t)
	cartSvc := cart.NewService(store)
	h := &CheckoutHandler{Checkout: checkout.NewService(store, cartSvc, "https://wa.me/212600000000")}

	_, c := doJSON(t, http.MethodPost, "/api/v1/checkout",
		map[string]any{"name": "Sara", "address": "12 Rue X", "city": "Casablanca"})
	err := h.Confirm(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}
