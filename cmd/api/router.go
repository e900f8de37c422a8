package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"booktrade-backend/internal/shared/middleware"
	"booktrade-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")

	// Health check stays reachable even when the store is down.
	v1.GET("/health", healthCheckHandler(c))
	v1.GET("/db-test", databaseTestHandler(c))

	// Under degraded boot, data routes answer 503 until the store is
	// reachable again.
	if c.StoreDegraded {
		v1.Use(middleware.StoreGuard(c.DB))
	}

	setupUserRoutes(v1, c)
	setupFavoritesRoutes(v1, c)
	setupBookRoutes(v1, c)
	setupCartRoutes(v1, c)
	setupOrderRoutes(v1, c)
	setupReviewRoutes(v1, c)
	setupTradeRoutes(v1, c)
	setupMessageRoutes(v1, c)
	setupCheckoutRoutes(v1, c)

	return router
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		users.GET("", c.UserHandler.ListUsers)
		users.GET("/:uid", c.UserHandler.GetUser)
		users.POST("", c.UserHandler.UpsertUser)
		users.PUT("/:uid", c.UserHandler.UpdateUser)
		users.DELETE("/:uid", c.UserHandler.DeleteUser)
	}
}

// ========================================
// FAVORITES ROUTES
// ========================================
func setupFavoritesRoutes(v1 *gin.RouterGroup, c *container.Container) {
	favorites := v1.Group("/favorites")
	{
		favorites.GET("/:uid", c.FavoritesHandler.GetFavorites)
		favorites.POST("/:uid", c.FavoritesHandler.AddFavorite)
		favorites.DELETE("/:uid/:bookId", c.FavoritesHandler.RemoveFavorite)
		favorites.PUT("/:uid/toggle", c.FavoritesHandler.ToggleFavorite)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/location", c.BookHandler.SearchByLocation)
		books.GET("/get-user-books/:uid", c.BookHandler.ListUserBooks)
		books.GET("/:id", c.BookHandler.GetBook)
		books.POST("", c.BookHandler.CreateBook)
		books.PUT("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
	}
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cart := v1.Group("/cart")
	{
		cart.GET("/:userId", c.CartHandler.ListCart)
		cart.POST("", c.CartHandler.AddToCart)
		cart.DELETE("/:id", c.CartHandler.DeleteCartItem)
	}
}

// ========================================
// ORDER ROUTES
// ========================================
func setupOrderRoutes(v1 *gin.RouterGroup, c *container.Container) {
	orders := v1.Group("/orders")
	{
		orders.GET("/:userId", c.OrderHandler.ListOrders)
		orders.POST("", c.OrderHandler.CreateOrders)
	}
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reviews := v1.Group("/reviews")
	{
		reviews.GET("/get-book-reviews/:id", c.ReviewHandler.ListBookReviews)
		reviews.GET("/get-user-reviews/:id", c.ReviewHandler.ListUserReviews)
		reviews.POST("", c.ReviewHandler.CreateReview)
		reviews.PUT("/:id", c.ReviewHandler.UpdateReview)
		reviews.DELETE("/:id", c.ReviewHandler.DeleteReview)
	}
}

// ========================================
// TRADE ROUTES
// ========================================
func setupTradeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	trades := v1.Group("/trades")
	{
		trades.GET("/requested-trades/:userId", c.TradeHandler.ListOutgoing)
		trades.GET("/trade-requests/:userId", c.TradeHandler.ListIncoming)
		trades.GET("/accepted-trades/:userId", c.TradeHandler.ListAccepted)
		trades.GET("/rejected-trades/:userId", c.TradeHandler.ListRejected)
		trades.PUT("/accept-trade/:id", c.TradeHandler.AcceptTrade)
		trades.PUT("/reject-trade/:id", c.TradeHandler.RejectTrade)
		trades.POST("", c.TradeHandler.CreateTrade)
	}
}

// ========================================
// MESSAGE ROUTES
// ========================================
func setupMessageRoutes(v1 *gin.RouterGroup, c *container.Container) {
	messages := v1.Group("/messages")
	{
		messages.GET("/get-users/:loggedInUserID", c.MessageHandler.ListContacts)
		messages.GET("/get-messages/:id/:myid", c.MessageHandler.ListConversation)
		messages.POST("", c.MessageHandler.SendMessage)
	}
}

// ========================================
// CHECKOUT ROUTES
// ========================================
func setupCheckoutRoutes(v1 *gin.RouterGroup, c *container.Container) {
	stripe := v1.Group("/stripe")
	{
		stripe.POST("/create-checkout-session", c.CheckoutHandler.CreateCheckoutSession)
	}
}

// ========================================
// HEALTH + DB TEST
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		c.JSON(http.StatusOK, health)
	}
}

func databaseTestHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Database not connected",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var version string
		if err := appCtx.DB.Pool.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Query failed: %v", err),
			})
			return
		}

		stats := appCtx.DB.Pool.Stat()

		c.JSON(http.StatusOK, gin.H{
			"database": version,
			"pool": gin.H{
				"total_conns": stats.TotalConns(),
				"idle_conns":  stats.IdleConns(),
				"max_conns":   stats.MaxConns(),
			},
		})
	}
}
