package auth

import (
	"net/http"
	"strings"

	"brokerhub/pkg"

	"github.com/gin-gonic/gin"
)

const operatorIDKey = "operator_id"

// OperatorID returns the authenticated operator resolved by RequireOperator.
// Handlers pass it explicitly into use cases; nothing below the HTTP layer
// reads ambient auth state.
func OperatorID(c *gin.Context) (string, bool) {
	v, ok := c.Get(operatorIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// SetOperatorID is exposed for handler tests that bypass the middleware.
func SetOperatorID(c *gin.Context, id string) {
	c.Set(operatorIDKey, id)
}

// RequireOperator validates the Bearer token and stores the operator id in
// the request context.
func RequireOperator(jwtSvc *JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			unauthorized(c)
			return
		}

		operatorID, err := jwtSvc.Verify(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(operatorIDKey, operatorID)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
