package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/shopmind/go-storefront/app/apperrors"
	"github.com/shopmind/go-storefront/app/helpers"
	"github.com/shopmind/go-storefront/app/services"
	"github.com/unrolled/render"
)

type AssistantHandler struct {
	render       *render.Render
	assistantSvc *services.AssistantService
}

func NewAssistantHandler(rnd *render.Render, assistantSvc *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		render:       rnd,
		assistantSvc: assistantSvc,
	}
}

type ChatForm struct {
	Message string `json:"message"`
}

type GenerateDescriptionForm struct {
	Prompt string `json:"prompt"`
}

// Chatbot relays a shopper message to the chat model. Model failures
// surface as a generic unavailability error; they never expose the
// upstream detail.
func (h *AssistantHandler) Chatbot(w http.ResponseWriter, r *http.Request) {
	var form ChatForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		helpers.RespondError(h.render, w, apperrors.BadRequest("Invalid JSON format."))
		return
	}
	if strings.TrimSpace(form.Message) == "" {
		helpers.RespondError(h.render, w, apperrors.Validation("Message cannot be empty."))
		return
	}

	reply, err := h.assistantSvc.Chat(r.Context(), form.Message)
	if err != nil {
		log.Printf("Chatbot: %v", err)
		helpers.RespondError(h.render, w, apperrors.Unavailable("The assistant is unavailable right now. Please try again later."))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"response": reply,
	})
}

func (h *AssistantHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var form GenerateDescriptionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		helpers.RespondError(h.render, w, apperrors.BadRequest("Invalid JSON format."))
		return
	}
	if strings.TrimSpace(form.Prompt) == "" {
		helpers.RespondError(h.render, w, apperrors.Validation("Prompt cannot be empty."))
		return
	}

	description, err := h.assistantSvc.GenerateDescription(r.Context(), form.Prompt)
	if err != nil {
		log.Printf("GenerateDescription: %v", err)
		helpers.RespondError(h.render, w, apperrors.Unavailable("Description generation is unavailable right now."))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"description": description,
	})
}
