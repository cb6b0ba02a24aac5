package handlers

import (
	"errors"
	"net/http"

	"brokerhub/internal/domain/entities"
	"brokerhub/internal/infrastructure/auth"
	"brokerhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// operatorID resolves the authenticated operator placed in the context by the
// auth middleware. Empty only if a route was wired without the middleware.
func operatorID(c *gin.Context) string {
	id, _ := auth.OperatorID(c)
	return id
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapValidationError converts schema-level violations shared by every form
// endpoint; returns nil when err is not a validation concern.
func mapValidationError(err error) *pkg.AppError {
	var ve entities.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", ve.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrAddressIncomplete):
		return pkg.NewDomainErrorSimple("ADDRESS_INCOMPLETE", "Billing address must be fully populated or fully absent", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Monetary values must be non-negative", http.StatusBadRequest)
	}
	return nil
}
