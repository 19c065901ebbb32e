package handlers

import (
	"ClinicaViva/middlewares"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated user's ID out of the request context.
// The token middleware stores it as a string; every clinic handler parses it
// here and passes it explicitly into the service calls.
func currentUserID(c *gin.Context) (int64, error) {
	idStr, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID in context: %w", err)
	}
	return id, nil
}
