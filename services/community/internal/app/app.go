package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"community-feed/pkg/config"
	"community-feed/pkg/jwt"
	"community-feed/pkg/logger"
	"community-feed/pkg/middleware"
	communityHTTP "community-feed/services/community/internal/controller/http"
	"community-feed/services/community/internal/repo/persistent"
	"community-feed/services/community/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "community-feed/services/community/docs" // Swagger docs
)

type handlers struct {
	posts       *communityHTTP.PostHandler
	comments    *communityHTTP.CommentHandler
	likes       *communityHTTP.LikeHandler
	leaderboard *communityHTTP.LeaderboardHandler
	auth        *communityHTTP.AuthHandler
}

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	karmaRepo := persistent.NewKarmaRepository(db)

	// Initialize use cases
	identityUseCase := usecase.NewIdentityUseCase(userRepo, redisClient, cfg.IdentityCacheTTL, log)
	postUseCase := usecase.NewPostUseCase(postRepo, identityUseCase, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, identityUseCase, usecase.OrphansAtRoot, log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, postRepo, commentRepo, identityUseCase, log)
	leaderboardUseCase := usecase.NewLeaderboardUseCase(karmaRepo, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)

	// Initialize HTTP handlers
	h := handlers{
		posts:       communityHTTP.NewPostHandler(postUseCase, commentUseCase, likeUseCase, log),
		comments:    communityHTTP.NewCommentHandler(commentUseCase, likeUseCase, log),
		likes:       communityHTTP.NewLikeHandler(likeUseCase, log),
		leaderboard: communityHTTP.NewLeaderboardHandler(leaderboardUseCase, cfg.LeaderboardWindow, cfg.LeaderboardLimit, log),
		auth:        communityHTTP.NewAuthHandler(authUseCase, identityUseCase, log),
	}

	r := newRouter(cfg, jwtService, h)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Community service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down community service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Stop accepting requests before the pools go away
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection if it was initialized
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	log.Info("Community service exited")
}

func newRouter(cfg *config.Config, jwtService *jwt.Service, h handlers) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.auth.Register)
		auth.POST("/login", h.auth.Login)
		auth.GET("/me", middleware.AuthMiddleware(jwtService), h.auth.Me)
	}

	// Session is optional: mutating handlers fall back to the identity payload
	community := api.Group("")
	community.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		community.GET("/posts", h.posts.ListPosts)
		community.POST("/posts", h.posts.CreatePost)
		community.GET("/posts/:id", h.posts.GetPost)
		community.DELETE("/posts/:id", h.posts.DeletePost)
		community.GET("/posts/:id/comments", h.posts.GetCommentTree)
		community.POST("/posts/:id/like", h.posts.LikePost)

		community.POST("/comments", h.comments.CreateComment)
		community.DELETE("/comments/:id", h.comments.DeleteComment)
		community.POST("/comments/:id/like", h.comments.LikeComment)

		community.POST("/likes", h.likes.ToggleLike)

		community.GET("/leaderboard", h.leaderboard.GetLeaderboard)
	}

	return r
}
