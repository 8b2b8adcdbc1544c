package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/hash"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/logging"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/session"
)

// AdminHandler is the shared-password gate in front of catalog edits.
// There are no user accounts; one bcrypt hash guards the admin role.
type AdminHandler struct {
	PasswordHash string
	Sessions     *session.Manager
}

func (h *AdminHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if !hash.CheckPassword(h.PasswordHash, req.Password) {
		l.Warn("admin_login_failed", "status", 401)
		return echo.NewHTTPError(http.StatusUnauthorized, "wrong password")
	}

	token, err := h.Sessions.Issue()
	if err != nil {
		l.Error("admin_login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create session")
	}

	c.SetCookie(session.Cookie(token))
	l.Info("admin_login_success")
	return c.JSON(http.StatusOK, echo.Map{"is_admin": true})
}

func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(session.Cookie(""))
	return c.JSON(http.StatusOK, echo.Map{"is_admin": false})
}

// Session restores the admin state on page load: a still-valid
// cookie means the prior session continues.
func (h *AdminHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"is_admin": h.Sessions.IsAdmin(c)})
}
