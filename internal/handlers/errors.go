package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/daybook/backend/internal/apierror"
	"github.com/JonnyWalker81/daybook/backend/internal/logger"
	"github.com/JonnyWalker81/daybook/backend/internal/middleware"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/service"
)

// writeError maps a service error onto a problem response. resource and id
// only shape the not-found message.
func writeError(c *gin.Context, err error, resource, id string) {
	requestID := apierror.GetRequestID(c)

	var malformed *models.MalformedStoredDataError
	switch {
	case errors.Is(err, service.ErrNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, id))
	case errors.Is(err, service.ErrForbidden):
		apierror.WriteProblem(c, apierror.NewForbiddenError(requestID))
	case errors.Is(err, service.ErrConflict):
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, err.Error()))
	case errors.Is(err, service.ErrInvalidUUID), errors.Is(err, service.ErrNotUUIDv7):
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(requestID, "id", id))
	case errors.Is(err, service.ErrInvalidInput):
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Please check your input and try again"))
	case errors.Is(err, service.ErrInvalidCredentials):
		problem := apierror.NewUnauthorizedError(requestID)
		problem.Detail = "Invalid email or password"
		problem.UserMessage = "The email or password you entered is incorrect"
		apierror.WriteProblem(c, problem)
	case errors.Is(err, service.ErrLoginUnavailable):
		apierror.WriteProblem(c, apierror.NewUnavailableError(requestID, err.Error()))
	case errors.As(err, &malformed):
		logger.Ctx(c.Request.Context()).Error("malformed stored data",
			logger.String("table", malformed.Table),
			logger.String("column", malformed.Column),
			logger.String("record_id", malformed.RecordID),
			logger.Err(malformed.Err),
		)
		apierror.WriteProblem(c, apierror.NewMalformedDataError(requestID, malformed.Error()))
	default:
		logger.Ctx(c.Request.Context()).Error("request failed",
			logger.String("path", c.FullPath()),
			logger.Err(err),
		)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// currentUser returns the authenticated user id, writing a 401 when there
// is none.
func currentUser(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return "", false
	}
	return userID, true
}

// pageParams reads limit and offset. Missing values are 0 and left for the
// service to default.
func pageParams(c *gin.Context) (limit, offset int, ok bool) {
	var err error
	if v := c.Query("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			invalidQuery(c, "limit", "must be an integer")
			return 0, 0, false
		}
	}
	if v := c.Query("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil {
			invalidQuery(c, "offset", "must be an integer")
			return 0, 0, false
		}
	}
	return limit, offset, true
}

func invalidQuery(c *gin.Context, field, message string) {
	apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
		{Field: field, Message: message, Code: "invalid_format"},
	}))
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apierror.WriteProblem(c, apierror.FromBindingError(apierror.GetRequestID(c), err))
		return false
	}
	return true
}
