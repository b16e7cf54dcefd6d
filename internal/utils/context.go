package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pcote/learningmachine/internal/auth"
	"github.com/pcote/learningmachine/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (auth.SessionUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return auth.SessionUser{}, fmt.Errorf("user not authenticated")
	}

	sessionUser, ok := user.(auth.SessionUser)

	if !ok {
		return auth.SessionUser{}, fmt.Errorf("invalid user type in context")
	}

	return sessionUser, nil
}
