package handler

import (
	"errors"
	"log"
	"main/services"
	"main/usecase"
	"main/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	service *usecase.AssistantService
	speech  *services.SpeechService
}

func NewAssistantHandler(service *usecase.AssistantService, speech *services.SpeechService) *AssistantHandler {
	return &AssistantHandler{service: service, speech: speech}
}

// Message interprets one natural-language input and carries the resulting
// command out. The endpoint always answers 200 with a reply; interpretation
// and execution trouble degrades to a conversational apology inside the
// reply body.
func (h *AssistantHandler) Message(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	reply := h.service.Respond(c.Request.Context(), userID, req.Message)
	utils.Success(c, reply)
}

// Speak synthesizes the given text to audio. When the voice API is not
// configured or fails, the endpoint answers 200 with fallback=true so the
// client uses its local synthesizer instead.
func (h *AssistantHandler) Speak(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	audio, err := h.speech.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		if !errors.Is(err, services.ErrSpeechNotConfigured) {
			log.Printf("Speech synthesis failed: %v", err)
		}
		utils.Success(c, gin.H{"fallback": true, "text": req.Text})
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
