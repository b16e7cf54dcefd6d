package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pcote/learningmachine/internal/utils"
)

type ExerciseResponse struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ExerciseHistoryResponse struct {
	ID       uint              `json:"id"`
	Question string            `json:"question"`
	Answer   string            `json:"answer"`
	Attempts []AttemptResponse `json:"attempts"`
}

func (h *Handler) GetExercises(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	exercises, err := h.store.Exercises(ctx.Request.Context(), user.Email)

	if err != nil {
		h.log.Error().Err(err).Str("user", user.Email).Msg("failed to retrieve exercises")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exercises"})
		return
	}

	response := make([]ExerciseResponse, 0, len(exercises))

	for _, exercise := range exercises {
		response = append(response, ExerciseResponse{
			ID:       exercise.ID,
			Question: exercise.Question,
			Answer:   exercise.Answer,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"exercises": response})
}

func (h *Handler) ExerciseHistory(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	history, err := h.store.AttemptHistory(ctx.Request.Context(), user.Email)

	if err != nil {
		h.log.Error().Err(err).Str("user", user.Email).Msg("failed to retrieve attempt history")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history"})
		return
	}

	response := make([]ExerciseHistoryResponse, 0, len(history))

	for _, entry := range history {
		attempts := make([]AttemptResponse, 0, len(entry.Attempts))

		for _, attempt := range entry.Attempts {
			attempts = append(attempts, AttemptResponse{
				Score:         attempt.Score,
				WhenAttempted: attempt.WhenAttempted.Format(time.RFC3339),
			})
		}

		response = append(response, ExerciseHistoryResponse{
			ID:       entry.Exercise.ID,
			Question: entry.Exercise.Question,
			Answer:   entry.Exercise.Answer,
			Attempts: attempts,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"history": response})
}

func (h *Handler) AddExercise(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	body, err := utils.GetJSONBody(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	question, questionOK := utils.StringField(body, "new_question")
	answer, answerOK := utils.StringField(body, "new_answer")

	if !questionOK || !answerOK {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.store.AddExercise(ctx.Request.Context(), question, answer, user.Email); err != nil {
		h.log.Error().Err(err).Str("user", user.Email).Msg("failed to add exercise")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add exercise"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"result": "success"})
}

func (h *Handler) DeleteExercise(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	body, err := utils.GetJSONBody(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	exerciseID, ok := utils.UintField(body, "exercise_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	deleted, err := h.store.DeleteExercise(ctx.Request.Context(), user.Email, exerciseID)

	if err != nil {
		h.log.Error().Err(err).Str("user", user.Email).Uint("exercise", exerciseID).Msg("failed to delete exercise")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete exercise"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusOK, gin.H{
			"result": fmt.Sprintf("user %s is not the owner of exercise %d", user.Email, exerciseID),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"result": fmt.Sprintf("deleted exercise %d belonging to user %s", exerciseID, user.Email),
	})
}
