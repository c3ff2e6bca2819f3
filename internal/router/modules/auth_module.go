package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"user-access-management/go-backend/internal/container"
	handlers "user-access-management/go-backend/internal/interface/http"
	"user-access-management/go-backend/internal/interface/middleware"
	"user-access-management/go-backend/pkg/helpers"
)

// AuthModule wires registration, login and password rotation.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: POST /api/auth/change-password

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTIssuer
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTIssuer) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	auth := rg.Group("/auth")
	auth.POST("/register", registerLimiter, m.Handler.Register)
	auth.POST("/login", loginLimiter, m.Handler.Login)

	protected := auth.Group("/")
	protected.Use(middleware.Auth(m.JWT))
	protected.POST("/change-password", m.Handler.ChangePassword)
}
