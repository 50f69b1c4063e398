package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/armonia-apps/msa-client-api/internal/middleware"
	"github.com/armonia-apps/msa-client-api/internal/models"
)

func actorFromContext(c *gin.Context) *models.User {
	return middleware.CurrentUser(c)
}

func boolQuery(c *gin.Context, key string) *bool {
	switch strings.ToLower(c.Query(key)) {
	case "true":
		val := true
		return &val
	case "false":
		val := false
		return &val
	}
	return nil
}
