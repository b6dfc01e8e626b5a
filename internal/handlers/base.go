package handlers

import (
	"inkwell/internal/middleware"

	"github.com/gin-gonic/gin"
)

// indexCacheKey is the cache entry for the rendered index data. Every
// mutation drops it so the listing never shows stale vote counts.
const indexCacheKey = "blog:index"

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message, "Title": "Error"})
}
