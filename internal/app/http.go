package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yemmycode/alx-files-manager/internal/auth"
	"github.com/yemmycode/alx-files-manager/internal/config"
	"github.com/yemmycode/alx-files-manager/internal/files"
	"github.com/yemmycode/alx-files-manager/internal/handler"
	"github.com/yemmycode/alx-files-manager/internal/middleware"
	"github.com/yemmycode/alx-files-manager/internal/session"
	"github.com/yemmycode/alx-files-manager/internal/users"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	userService := users.NewService(users.NewPGStore(infra.DB))
	fileService := files.NewService(
		files.NewPGStore(infra.DB),
		infra.Queue,
		cfg.FolderPath,
	)

	resolver := auth.NewResolver(sessionStore, userService)
	authMiddleware := middleware.NewAuth(resolver)

	h := handler.NewHandler(
		sessionStore,
		userService,
		fileService,
		infra.Queue,
		infra.DB,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	RegisterRoutes(router, h, authMiddleware)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, infra.Close, nil
}

// RegisterRoutes wires the HTTP surface onto the router. Split out so
// tests can mount the same routes over fake stores.
func RegisterRoutes(router *gin.Engine, h *handler.Handler, authMW *middleware.Auth) {

	router.GET("/status", h.GetStatus)
	router.GET("/stats", h.GetStats)

	router.GET("/connect", authMW.RequireBasicAuth(), h.GetConnect)
	router.GET("/disconnect", authMW.RequireToken(), h.GetDisconnect)

	router.POST("/users", h.PostNewUser)
	router.GET("/users/me", authMW.RequireToken(), h.GetMe)

	router.POST("/files", authMW.RequireToken(), h.PostUpload)
	router.GET("/files", authMW.RequireToken(), h.GetIndex)
	router.GET("/files/:id", authMW.RequireToken(), h.GetShow)
	router.PUT("/files/:id/publish", authMW.RequireToken(), h.PutPublish)
	router.PUT("/files/:id/unpublish", authMW.RequireToken(), h.PutUnpublish)
	router.GET("/files/:id/data", authMW.OptionalToken(), h.GetFileData)

	// Uniform structured 404 instead of the framework default.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})
}
