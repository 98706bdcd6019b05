package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jyokubov/portfolio/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTelegram spins up a Bot API stand-in and returns a client pointed at it
// plus a counter of received sendMessage calls.
func fakeTelegram(t *testing.T, respond func(w http.ResponseWriter)) (*service.TelegramClient, *atomic.Int64, func()) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		respond(w)
	}))
	client := service.NewTelegramClient("test-token", "42")
	client.BaseURL = srv.URL
	return client, &calls, srv.Close
}

func okTelegram(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true}`))
}

const contactBody = `{
	"name": "Jane",
	"email": "jane@example.com",
	"service": "Web application",
	"budget": "$2k",
	"message": "Hi <there> & hello"
}`

func TestContactSuccess(t *testing.T) {
	client, calls, stop := fakeTelegram(t, okTelegram)
	defer stop()
	h := &ContactHandler{Sender: client}

	rec := httptest.NewRecorder()
	h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(contactBody)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, int64(1), calls.Load())
}

// An invalid submission must never produce an outbound webhook call.
func TestContactMissingFieldNoOutboundCall(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty message", `{"name":"Jane","email":"j@e.com","service":"Web application","message":""}`},
		{"whitespace message", `{"name":"Jane","email":"j@e.com","service":"Web application","message":"   "}`},
		{"missing name", `{"email":"j@e.com","service":"Web application","message":"hi"}`},
		{"missing service", `{"name":"Jane","email":"j@e.com","message":"hi"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls, stop := fakeTelegram(t, okTelegram)
			defer stop()
			h := &ContactHandler{Sender: client}

			rec := httptest.NewRecorder()
			h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Missing required fields: name, email, service, message."}`, rec.Body.String())
			assert.Zero(t, calls.Load())
		})
	}
}

func TestContactBudgetOptional(t *testing.T) {
	client, calls, stop := fakeTelegram(t, okTelegram)
	defer stop()
	h := &ContactHandler{Sender: client}

	body := `{"name":"Jane","email":"j@e.com","service":"Web application","message":"hi"}`
	rec := httptest.NewRecorder()
	h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), calls.Load())
}

func TestContactUpstreamFailure(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
	}{
		{"api error", func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
		}},
		{"ok false with 200", func(w http.ResponseWriter) {
			w.Write([]byte(`{"ok":false,"description":"blocked"}`))
		}},
		{"malformed response", func(w http.ResponseWriter) {
			w.Write([]byte(`not json`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, stop := fakeTelegram(t, tt.respond)
			defer stop()
			h := &ContactHandler{Sender: client}

			rec := httptest.NewRecorder()
			h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(contactBody)))

			assert.Equal(t, http.StatusBadGateway, rec.Code)
			assert.JSONEq(t, `{"error":"Failed to send message."}`, rec.Body.String())
		})
	}
}

func TestContactNotConfigured(t *testing.T) {
	h := &ContactHandler{Sender: nil}
	rec := httptest.NewRecorder()
	h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(contactBody)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Contact form is not configured."}`, rec.Body.String())
}

func TestContactEscapesMessageContent(t *testing.T) {
	var received string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &req))
		received = req["text"].(string)
		okTelegram(w)
	}))
	defer srv.Close()
	client := service.NewTelegramClient("test-token", "42")
	client.BaseURL = srv.URL
	h := &ContactHandler{Sender: client}

	rec := httptest.NewRecorder()
	h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(contactBody)))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, received, "Hi &lt;there&gt; &amp; hello")
	assert.NotContains(t, received, "<there>")
}
