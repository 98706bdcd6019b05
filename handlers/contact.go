package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jyokubov/portfolio/service"
)

// MessageSender relays a contact submission to the configured chat.
type MessageSender interface {
	Send(ctx context.Context, m service.ContactMessage) error
}

// ContactHandler accepts public contact form submissions and forwards them to
// the messaging webhook. Best-effort: no retry, no queueing.
type ContactHandler struct {
	Sender MessageSender // nil when TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID are unset
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.Sender == nil {
		log.Println("contact: TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID is missing")
		respondError(w, http.StatusInternalServerError, "Contact form is not configured.")
		return
	}

	var body service.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	// Budget is optional; everything else must be non-blank after trimming.
	if strings.TrimSpace(body.Name) == "" ||
		strings.TrimSpace(body.Email) == "" ||
		strings.TrimSpace(body.Service) == "" ||
		strings.TrimSpace(body.Message) == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields: name, email, service, message.")
		return
	}

	if err := h.Sender.Send(r.Context(), body); err != nil {
		log.Printf("contact: %v", err)
		respondError(w, http.StatusBadGateway, "Failed to send message.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
