// internal/handlers/respond.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/advisorbridge/advisorbridge-backend/internal/services"
	"github.com/advisorbridge/advisorbridge-backend/internal/utils"
)

// handleServiceError maps a lifecycle error onto the HTTP envelope. Storage
// failures and anything untyped become a generic 500 so no internal detail
// leaks to the client.
func handleServiceError(c *gin.Context, err error) {
	if svcErr := services.AsServiceError(err); svcErr != nil {
		if svcErr.Code == services.CodeStorage {
			logrus.WithError(err).WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).Error("Storage operation failed")
			utils.InternalErrorResponse(c, "")
			return
		}
		utils.ErrorResponse(c, svcErr.StatusCode, svcErr.Code, svcErr.Message, nil)
		return
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("Unhandled error")
	utils.InternalErrorResponse(c, "")
}

// currentUserID reads the authenticated user's id set by the auth middleware.
// Responds 401 and returns false when it is missing or malformed.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	idStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	return id, true
}

// pathUUID parses a :param path segment as a UUID, responding 400 on failure.
func pathUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		utils.BadRequestResponse(c, "invalid "+param, nil)
		return uuid.Nil, false
	}
	return id, true
}
