// Package router wires the skillswap API routes.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/skillswap/internal/apiserver/biz"
	"github.com/kart-io/skillswap/internal/apiserver/handler"
	"github.com/kart-io/skillswap/internal/store"
	"github.com/kart-io/skillswap/internal/swap"
)

// Config carries what the router needs beyond the store.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// New builds the gin engine with every API route registered.
func New(f store.Factory, cfg Config) *gin.Engine {
	authSvc := biz.NewAuthService(f, cfg.JWTSecret, cfg.TokenTTL)
	userSvc := biz.NewUserService(f)
	requestSvc := biz.NewRequestService(f, swap.New())
	notificationSvc := biz.NewNotificationService(f)

	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	requestHandler := handler.NewRequestHandler(requestSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)

	engine := gin.New()
	engine.Use(gin.Recovery())

	api := engine.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/signin", authHandler.SignIn)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// 目录匿名可见，未登录时不排除任何人
		api.GET("/users", userHandler.List)

		protected := api.Group("")
		protected.Use(handler.Auth(authSvc))
		{
			protected.GET("/users/me", userHandler.Me)
			protected.PUT("/users/me", userHandler.UpdateMe)
			protected.GET("/users/:id", userHandler.Get)

			protected.POST("/requests", requestHandler.Create)
			protected.GET("/requests", requestHandler.ListMine)
			protected.GET("/requests/:id", requestHandler.Get)
			protected.POST("/requests/:id/accept", requestHandler.Accept)
			protected.POST("/requests/:id/reject", requestHandler.Reject)
			protected.POST("/requests/:id/complete", requestHandler.Complete)
			protected.POST("/requests/:id/feedback", requestHandler.SubmitFeedback)

			protected.GET("/notifications", notificationHandler.List)
		}
	}

	logger.Info("API routes registered")
	return engine
}
