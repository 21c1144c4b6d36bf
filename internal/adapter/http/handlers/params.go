package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseQueryInt reads an optional integer query parameter. A missing or
// malformed value falls back to def rather than failing the request.
func parseQueryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
