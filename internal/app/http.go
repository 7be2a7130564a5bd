package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"chat-service/internal/ai"
	"chat-service/internal/cache"
	"chat-service/internal/chat"
	"chat-service/internal/config"
	"chat-service/internal/diagnosis"
	"chat-service/internal/gateway"
	"chat-service/internal/middleware"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	store := cache.NewRedisStore(infra.Redis.Client)
	conversationLog := chat.NewLog(store, cfg.ConversationTTL)
	aiRouter := ai.NewRouter(cfg.AICoachURL, cfg.AIVideoURL, cfg.AITimeout)
	coordinator := chat.NewCoordinator(store, conversationLog, aiRouter, cfg.ActiveSessionTTL)
	diagnosisResolver := diagnosis.NewDBResolver(infra.DB)

	handler := gateway.NewHandler(coordinator, diagnosisResolver)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	handler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
