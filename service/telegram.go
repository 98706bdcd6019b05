package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const telegramAPI = "https://api.telegram.org"

// ContactMessage is a contact form submission to relay. Budget is optional.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
	Message string `json:"message"`
}

// TelegramClient forwards contact submissions to a chat via the Bot API.
// Delivery is at-most-once: no retry, no queueing.
type TelegramClient struct {
	Token   string
	ChatID  string
	BaseURL string // overridable for tests; defaults to the Bot API
	HTTP    *http.Client
}

func NewTelegramClient(token, chatID string) *TelegramClient {
	return &TelegramClient{
		Token:   token,
		ChatID:  chatID,
		BaseURL: telegramAPI,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// escapeHTML escapes the characters Telegram's HTML parse mode treats specially.
func escapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// FormatContactMessage renders a submission as a Telegram HTML message.
func FormatContactMessage(m ContactMessage) string {
	budget := m.Budget
	if budget == "" {
		budget = "—"
	}
	lines := []string{
		"🆕 <b>New contact form submission</b>",
		"",
		"<b>Name:</b> " + escapeHTML(m.Name),
		"<b>Email:</b> " + escapeHTML(m.Email),
		"<b>Service:</b> " + escapeHTML(m.Service),
		"<b>Budget:</b> " + escapeHTML(budget),
		"",
		"<b>Message:</b>",
		escapeHTML(m.Message),
	}
	return strings.Join(lines, "\n")
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send relays the formatted submission. A non-success status or ok:false response
// is an upstream failure for the caller to map to 502.
func (c *TelegramClient) Send(ctx context.Context, m ContactMessage) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    c.ChatID,
		Text:      FormatContactMessage(m),
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.BaseURL, c.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("telegram: malformed response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !body.OK {
		return fmt.Errorf("telegram: sendMessage failed: %s", body.Description)
	}
	return nil
}
