package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	billdomain "github.com/vasavigrand/vgbilling/internal/bill/domain"
)

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func respondList(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

var errInvalidRequest = errors.New("invalid request body")

var validationErrors = []error{
	billdomain.ErrGuestNameRequired,
	billdomain.ErrGuestNameInvalid,
	billdomain.ErrContactInvalid,
	billdomain.ErrDatesRequired,
	billdomain.ErrDatesInvalid,
	billdomain.ErrRoomTypeRequired,
	billdomain.ErrUnitPriceInvalid,
	billdomain.ErrRoomCountInvalid,
	billdomain.ErrRoomCountMismatch,
	billdomain.ErrAdultsOutOfRange,
	billdomain.ErrChildrenOutOfRange,
	billdomain.ErrRoomsOutOfRange,
	billdomain.ErrBillTypeInvalid,
	billdomain.ErrOverrideInvalid,
}

// AbortWithError maps domain errors onto HTTP statuses. Validation failures
// are client errors; anything unrecognized is a 500 with the detail kept out
// of the response body.
func AbortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidRequest):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, billdomain.ErrBillNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case isValidationError(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
