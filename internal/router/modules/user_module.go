package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"user-access-management/go-backend/internal/container"
	handlers "user-access-management/go-backend/internal/interface/http"
	"user-access-management/go-backend/internal/interface/middleware"
	"user-access-management/go-backend/pkg/helpers"
)

// UserModule wires the protected user management routes under /api/users.

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTIssuer
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTIssuer) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.Auth(m.JWT))
	users.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		users.GET("", m.Handler.List)
		users.GET("/search", m.Handler.Search)
		users.GET("/by-email/:email", m.Handler.GetByEmail)
		users.GET("/:id", m.Handler.GetByID)
		users.PUT("/:id", m.Handler.Update)
		users.PATCH("/:id/deactivate", m.Handler.Deactivate)
		users.DELETE("/:id", m.Handler.Delete)
	}
}
