package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pcote/learningmachine/internal/models"
	"github.com/pcote/learningmachine/internal/utils"
)

type ResourceResponse struct {
	ID      uint   `json:"id"`
	Caption string `json:"caption"`
	URL     string `json:"url"`
	UserID  string `json:"user_id"`
}

func resourceResponses(resources []models.Resource) []ResourceResponse {
	response := make([]ResourceResponse, 0, len(resources))

	for _, resource := range resources {
		response = append(response, ResourceResponse{
			ID:      resource.ID,
			Caption: resource.Caption,
			URL:     resource.URL,
			UserID:  resource.UserID,
		})
	}

	return response
}

// AddResource stores a clickable reference link, optionally tied to an
// exercise when the request carries an exercise_id.
func (h *Handler) AddResource(ctx *gin.Context) {
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

	caption, captionOK := utils.StringField(body, "caption")
	url, urlOK := utils.StringField(body, "url")

	if !captionOK || !urlOK {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var exerciseID *uint

	if value, present := body["exercise_id"]; present && value != nil {
		id, ok := utils.UintField(body, "exercise_id")

		if !ok {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		exerciseID = &id
	}

	if err := h.store.AddResource(ctx.Request.Context(), caption, url, user.Email, exerciseID); err != nil {
		h.log.Error().Err(err).Str("user", user.Email).Msg("failed to add resource")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add resource"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"result": "success"})
}

func (h *Handler) DeleteResource(ctx *gin.Context) {
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

	resourceID, ok := utils.UintField(body, "resource_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	deleted, err := h.store.DeleteResource(ctx.Request.Context(), user.Email, resourceID)

	if err != nil {
		h.log.Error().Err(err).Str("user", user.Email).Uint("resource", resourceID).Msg("failed to delete resource")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resource"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusOK, gin.H{
			"result": fmt.Sprintf("user %s is not the owner of resource %d", user.Email, resourceID),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"result": fmt.Sprintf("deleted resource %d belonging to user %s", resourceID, user.Email),
	})
}

func (h *Handler) GetResources(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	resources, err := h.store.Resources(ctx.Request.Context(), user.Email)

	if err != nil {
		h.log.Error().Err(err).Str("user", user.Email).Msg("failed to retrieve resources")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve resources"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"resources": resourceResponses(resources)})
}

func (h *Handler) GetResourcesForExercise(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	exerciseID, err := strconv.ParseUint(ctx.Param("exercise_id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exercise id"})
		return
	}

	resources, err := h.store.ResourcesForExercise(ctx.Request.Context(), uint(exerciseID), user.Email)

	if err != nil {
		h.log.Error().Err(err).Str("user", user.Email).Msg("failed to retrieve resources for exercise")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve resources"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"resources": resourceResponses(resources)})
}
