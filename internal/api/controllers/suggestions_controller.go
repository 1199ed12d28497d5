package controllers

import (
	"github.com/gin-gonic/gin"

	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type SuggestionsController struct {
	suggestionService services.SuggestionServiceInterface
}

func NewSuggestionsController(suggestionService services.SuggestionServiceInterface) *SuggestionsController {
	return &SuggestionsController{suggestionService: suggestionService}
}

func (s *SuggestionsController) GetSuggestions(c *gin.Context) {
	deviceID := c.GetString("device_id")

	suggestions, err := s.suggestionService.Suggest(c.Request.Context(), deviceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Suggestions generated")
}
