package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pcote/learningmachine/internal/utils"
)

type AttemptResponse struct {
	Score         int    `json:"score"`
	WhenAttempted string `json:"when_attempted"`
}

// AddScore records a self-assessed attempt score against an exercise.
func (h *Handler) AddScore(ctx *gin.Context) {
	if _, err := utils.GetCurrentUser(ctx); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	body, err := utils.GetJSONBody(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	exerciseID, idOK := utils.UintField(body, "exercise_id")
	score, scoreOK := utils.IntField(body, "score")

	if !idOK || !scoreOK {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.store.AddAttempt(ctx.Request.Context(), exerciseID, score); err != nil {
		h.log.Error().Err(err).Uint("exercise", exerciseID).Msg("failed to add attempt")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add score"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"result": "success"})
}
