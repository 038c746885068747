package Middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Database stores the shared gorm handle in the request context so handlers
// read it from there instead of a package-wide singleton. Tests swap in an
// isolated in-memory store the same way.
func Database(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	}
}
