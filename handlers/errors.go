package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"condoreserve/services/booking"
	"condoreserve/services/catalog"
	"condoreserve/utils"
)

// statusForCode maps the stable service error codes to HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case booking.CodeValidation:
		return http.StatusBadRequest
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodePermission:
		return http.StatusForbidden
	case booking.CodeCancellationWindow:
		return http.StatusUnprocessableEntity
	case booking.CodeDuplicateBooking,
		booking.CodeQuotaExceeded,
		booking.CodeSlotTaken,
		booking.CodeApprovalConflict,
		booking.CodeInvalidState,
		catalog.CodeDuplicateName:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders a service error as the standard JSON envelope.
// Unrecognized errors become an opaque 500.
func respondError(c *gin.Context, err error) {
	var bErr *booking.Error
	if errors.As(err, &bErr) {
		c.JSON(statusForCode(bErr.Code), utils.ErrorResponse{
			Code:    bErr.Code,
			Message: bErr.Message,
			Details: bErr.Details,
		})
		return
	}

	var cErr *catalog.Error
	if errors.As(err, &cErr) {
		c.JSON(statusForCode(cErr.Code), utils.ErrorResponse{
			Code:    cErr.Code,
			Message: cErr.Message,
			Details: cErr.Details,
		})
		return
	}

	utils.GetLogger().Error("handler: unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
		Message: "Internal Server Error",
	})
}
