package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/catalog"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/hash"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/models"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/session"
)

func newAdminHandler(t *testing.T) *AdminHandler {
	passwordHash, err := hash.HashPassword("top-secret")
	require.NoError(t, err)
	return &AdminHandler{
		PasswordHash: passwordHash,
		Sessions:     session.NewManager([]byte("test-secret")),
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	h := newAdminHandler(t)

	rec, c := doJSON(t, http.MethodPost, "/api/v1/admin/login", map[string]string{"password": "guess"})
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Empty(t, rec.Result().Cookies())

	// State is unchanged: a session probe still reports not admin.
	rec, c = doJSON(t, http.MethodGet, "/api/v1/admin/session", nil)
	require.NoError(t, h.Session(c))

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp["is_admin"])
}

func TestAdminLoginCorrectPassword(t *testing.T) {
	h := newAdminHandler(t)

	rec, c := doJSON(t, http.MethodPost, "/api/v1/admin/login", map[string]string{"password": "top-secret"})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp["is_admin"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, session.CookieName, cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)
	// Session-scoped: no Expires on the cookie.
	require.True(t, cookies[0].Expires.IsZero())

	// The issued cookie restores the admin session.
	rec2, c2 := doJSON(t, http.MethodGet, "/api/v1/admin/session", nil)
	c2.Request().AddCookie(cookies[0])
	require.NoError(t, h.Session(c2))
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &resp))
	require.True(t, resp["is_admin"])
}

func TestAdminLogoutClearsCookie(t *testing.T) {
	h := newAdminHandler(t)

	rec, c := doJSON(t, http.MethodPost, "/api/v1/admin/logout", nil)
	require.NoError(t, h.Logout(c))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}

func TestRequireAdminGuardsSaveMeal(t *testing.T) {
	sessions := session.NewManager([]byte("test-secret"))
	catalogHandler := &CatalogHandler{Catalog: catalog.NewService(initTestStore(t))}
	guarded := sessions.RequireAdmin(catalogHandler.SaveMeal)

	_, c := doJSON(t, http.MethodPost, "/api/v1/admin/meals",
		map[string]any{"name": "Sneaky Meal", "image": "s.jpg", "price": 10})
	err := guarded(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)

	token, err := sessions.Issue()
	require.NoError(t, err)

	rec, c := doJSON(t, http.MethodPost, "/api/v1/admin/meals",
		map[string]any{"name": "Allowed Meal", "image": "a.jpg", "price": 10})
	c.Request().AddCookie(session.Cookie(token))
	require.NoError(t, guarded(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveMealValidatesRequiredFields(t *testing.T) {
	h := &CatalogHandler{Catalog: catalog.NewService(initTestStore(t))}

	_, c := doJSON(t, http.MethodPost, "/api/v1/admin/meals", map[string]any{"name": "No Price", "image": "x.jpg"})
	err := h.SaveMeal(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestSaveMealEditByPathID(t *testing.T) {
	h := &CatalogHandler{Catalog: catalog.NewService(initTestStore(t))}

	rec, c := doJSON(t, http.MethodPut, "/api/v1/admin/meals/1",
		map[string]any{"name": "Edited Bowl", "image": "e.jpg", "price": 72})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.SaveMeal(c))

	var resp struct {
		Meal models.Meal `json:"meal"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(1), resp.Meal.ID)
	require.Equal(t, "Edited Bowl", resp.Meal.Name)
	require.Equal(t, catalog.DefaultMeals[0].Rating, resp.Meal.Rating)
}
