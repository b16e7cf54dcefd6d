package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcote/learningmachine/internal/types"
)

// RequireJSON aborts with 400 before the handler runs unless the request
// body is a JSON object carrying every named field with a non-null value.
// Values are not type-checked beyond non-null; the decoded object is
// stashed in the gin context for the handler.
func RequireJSON(fields ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body map[string]interface{}

		if err := json.NewDecoder(ctx.Request.Body).Decode(&body); err != nil || body == nil {
			ctx.AbortWithStatus(http.StatusBadRequest)
			return
		}

		for _, field := range fields {
			value, present := body[field]

			if !present || value == nil {
				ctx.AbortWithStatus(http.StatusBadRequest)
				return
			}
		}

		ctx.Set(types.ContextBodyKey, body)
		ctx.Next()
	}
}
