package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/domain/entity"
)

// GetSession extracts the authenticated session from the Gin context.
func GetSession(c *gin.Context) *entity.Session {
	sessVal, exists := c.Get("session")
	if !exists {
		return nil
	}
	sess, ok := sessVal.(*entity.Session)
	if !ok {
		return nil
	}
	return sess
}

// PathID parses a numeric :id path parameter. Zero means absent or invalid.
func PathID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0
	}
	return id
}
