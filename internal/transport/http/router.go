package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/handlers"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/session"
)

type Deps struct {
	CatalogHandler  *handlers.CatalogHandler
	CartHandler     *handlers.CartHandler
	RatingsHandler  *handlers.RatingsHandler
	CheckoutHandler *handlers.CheckoutHandler
	AdminHandler    *handlers.AdminHandler
	SearchHandler   *handlers.SearchHandler
	Sessions        *session.Manager
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	meals := v1.Group("/meals")
	meals.GET("", d.CatalogHandler.GetMeals)
	meals.GET("/:id", d.CatalogHandler.GetMeal)
	meals.GET("/:id/ratings", d.RatingsHandler.GetMealRatings)
	meals.POST("/:id/ratings", d.RatingsHandler.AddMealRating)

	products := v1.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	articles := v1.Group("/articles")
	articles.GET("", d.CatalogHandler.GetArticles)
	articles.GET("/:id", d.CatalogHandler.GetArticle)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PATCH("/:id", d.CartHandler.UpdateQuantity)
	cart.DELETE("", d.CartHandler.ClearCart)

	v1.GET("/checkout/contact", d.CheckoutHandler.GetContact)
	v1.POST("/checkout", d.CheckoutHandler.Confirm)

	admin := v1.Group("/admin")
	admin.POST("/login", d.AdminHandler.Login)
	admin.POST("/logout", d.AdminHandler.Logout)
	admin.GET("/session", d.AdminHandler.Session)

	guarded := admin.Group("", d.Sessions.RequireAdmin)
	guarded.POST("/meals", d.CatalogHandler.SaveMeal)
	guarded.PUT("/meals/:id", d.CatalogHandler.SaveMeal)
	guarded.POST("/products", d.CatalogHandler.SaveProduct)
	guarded.PUT("/products/:id", d.CatalogHandler.SaveProduct)
}
