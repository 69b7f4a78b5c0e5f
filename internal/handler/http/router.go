package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterOptions carries the settings the router reads from configuration.
type RouterOptions struct {
	BaseURL            string
	GoogleClientID     string
	GoogleClientSecret string
	AllowHeaderAuth    bool
	RateLimitPerSecond float64
	// RequestLogger is optional; nil disables per-request log lines.
	RequestLogger *zerolog.Logger
}

type Router struct {
	userHandler      *UserHandler
	authHandler      *AuthHandler
	postHandler      *PostHandler
	commentHandler   *CommentHandler
	profileHandler   *ProfileHandler
	dashboardHandler *DashboardHandler
	aiHandler        *AIHandler
	authenticator    *middleware.Authenticator
	opts             RouterOptions
}

func NewRouter(
	authUsecase usecasecontract.IAuthUseCase,
	userUsecase usecasecontract.IUserUseCase,
	postUsecase usecasecontract.IPostUseCase,
	commentUsecase usecasecontract.ICommentUseCase,
	dashboardUsecase usecasecontract.IDashboardUseCase,
	aiUsecase usecasecontract.IAIUseCase,
	opts RouterOptions,
) *Router {
	if opts.RateLimitPerSecond <= 0 {
		opts.RateLimitPerSecond = 10
	}
	return &Router{
		userHandler:      NewUserHandler(authUsecase),
		authHandler:      NewAuthHandler(authUsecase, opts.BaseURL, opts.GoogleClientID, opts.GoogleClientSecret),
		postHandler:      NewPostHandler(postUsecase),
		commentHandler:   NewCommentHandler(commentUsecase),
		profileHandler:   NewProfileHandler(userUsecase, postUsecase),
		dashboardHandler: NewDashboardHandler(dashboardUsecase),
		aiHandler:        NewAIHandler(aiUsecase),
		authenticator:    middleware.NewAuthenticator(authUsecase, userUsecase, opts.AllowHeaderAuth),
		opts:             opts,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.UserIDHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if r.opts.RequestLogger != nil {
		router.Use(middleware.RequestLogger(r.opts.RequestLogger))
	}
	router.Use(middleware.Metrics())

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.opts.RateLimitPerSecond, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.RateLimiter(lmt))

	optional := r.authenticator.OptionalAuth()
	requireAuth := r.authenticator.RequireAuth()
	requireAdmin := middleware.RequireAdmin()

	// Public routes (no authentication required)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", r.userHandler.Signup)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/verify-email", r.userHandler.VerifyEmail)
		auth.POST("/verify-security", r.userHandler.VerifySecurity)
		auth.POST("/reset-password", r.userHandler.ResetPassword)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	posts := api.Group("/posts")
	{
		posts.GET("", optional, r.postHandler.ListPosts)
		posts.GET("/:slug", optional, r.postHandler.GetPost)
		posts.POST("", requireAuth, r.postHandler.CreatePost)
		posts.PUT("/:slug", requireAuth, r.postHandler.UpdatePost)
		posts.DELETE("/:slug", requireAuth, r.postHandler.DeletePost)
	}

	comments := api.Group("/comments")
	{
		comments.GET("", r.commentHandler.GetComments)
		comments.POST("", requireAuth, r.commentHandler.CreateComment)
		comments.POST("/:commentID/like", r.commentHandler.LikeComment)
	}

	profile := api.Group("/profile")
	{
		profile.GET("", requireAuth, r.profileHandler.GetProfile)
		profile.PUT("", requireAuth, r.profileHandler.UpdateProfile)
		profile.POST("", requireAuth, r.profileHandler.ProfileAction)
		profile.GET("/:userId", r.profileHandler.GetPublicProfile)
	}

	// Admin routes
	api.GET("/users", requireAuth, requireAdmin, r.profileHandler.ListUsers)
	api.GET("/dashboard", requireAuth, requireAdmin, r.dashboardHandler.GetStats)

	api.POST("/chat", r.aiHandler.HandleChat)
}
