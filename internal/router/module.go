package router

import "github.com/gin-gonic/gin"

// Module is a routable feature slice. AuthModule and UserModule implement
// it; each hangs its own group with its own middleware off the /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
