package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pcote/learningmachine/internal/types"
)

// GetJSONBody returns the request body stashed by the RequireJSON
// middleware.
func GetJSONBody(ctx *gin.Context) (map[string]interface{}, error) {
	value, exists := ctx.Get(types.ContextBodyKey)

	if !exists {
		return nil, fmt.Errorf("no validated body in context")
	}

	body, ok := value.(map[string]interface{})

	if !ok {
		return nil, fmt.Errorf("invalid body type in context")
	}

	return body, nil
}

// StringField reads a string value out of a decoded JSON body.
func StringField(body map[string]interface{}, key string) (string, bool) {
	value, ok := body[key].(string)
	return value, ok
}

// IntField reads an integer value out of a decoded JSON body. JSON numbers
// decode as float64; anything with a fractional part is rejected.
func IntField(body map[string]interface{}, key string) (int, bool) {
	value, ok := body[key].(float64)

	if !ok || value != float64(int(value)) {
		return 0, false
	}

	return int(value), true
}

// UintField reads a non-negative integer value out of a decoded JSON body.
func UintField(body map[string]interface{}, key string) (uint, bool) {
	value, ok := IntField(body, key)

	if !ok || value < 0 {
		return 0, false
	}

	return uint(value), true
}
