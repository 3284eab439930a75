package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/id"
)

// ParseSIDParam reads a prefixed ID from the route parameter paramName and
// checks its prefix. entityName is used in error messages.
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}
	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}
	return sid, nil
}
