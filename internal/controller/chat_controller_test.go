package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LionGx2004/cannatracker/internal/dto"
	"github.com/LionGx2004/cannatracker/internal/identity"
	"github.com/LionGx2004/cannatracker/internal/pkg/logger"
	"github.com/LionGx2004/cannatracker/internal/pkg/serverutils"
	"github.com/LionGx2004/cannatracker/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Debug(module, message string, details map[string]interface{}) {}

func (noopLogger) Sync() error { return nil }

var _ logger.ILogger = noopLogger{}

type fakeVerifier struct {
	userId uuid.UUID
	err    error
}

func (v *fakeVerifier) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	if v.err != nil {
		return uuid.Nil, v.err
	}
	return v.userId, nil
}

var _ identity.Verifier = &fakeVerifier{}

type fakeChatService struct {
	calls  int
	result *llm.StreamResult
	err    error
	token  string
}

func (s *fakeChatService) Chat(ctx context.Context, token string, request *dto.ChatRequest) (*llm.StreamResult, error) {
	s.calls++
	s.token = token
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newChatTestApp(svc *fakeChatService, verifier identity.Verifier) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(noopLogger{}))

	passthrough := func(ctx *fiber.Ctx) error { return ctx.Next() }
	ctrl := NewChatController(svc, noopLogger{})
	ctrl.RegisterRoutes(app.Group("/api"), serverutils.AuthMiddleware(verifier), passthrough)
	return app
}

type chatResponse struct {
	Code        int
	ContentType string
	Body        string
}

func postChat(t *testing.T, app *fiber.App, body, authHeader string) chatResponse {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, "/api/chat/v1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return chatResponse{
		Code:        resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(data),
	}
}

func errorMessage(t *testing.T, body string) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload["error"]
}

func validChatBody(messageCount int, content string) string {
	messages := make([]map[string]string, messageCount)
	for i := range messages {
		messages[i] = map[string]string{"role": "user", "content": content}
	}
	body, _ := json.Marshal(map[string]interface{}{"messages": messages})
	return string(body)
}

func TestChatRequiresAuth(t *testing.T) {
	svc := &fakeChatService{}
	app := newChatTestApp(svc, &fakeVerifier{userId: uuid.New()})

	rec := postChat(t, app, validChatBody(1, "Hi"), "")

	assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authentifizierung erforderlich", errorMessage(t, rec.Body))
	assert.Zero(t, svc.calls)
}

func TestChatRejectsBadToken(t *testing.T) {
	svc := &fakeChatService{}
	app := newChatTestApp(svc, &fakeVerifier{err: identity.ErrInvalidToken})

	rec := postChat(t, app, validChatBody(1, "Hi"), "Bearer nope")

	assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Ungültige Authentifizierung", errorMessage(t, rec.Body))
	assert.Zero(t, svc.calls)
}

func TestChatValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantMsg  string
		wantCode int
	}{
		{
			name:     "malformed json",
			body:     "{not json",
			wantMsg:  "Ungültiges Nachrichtenformat",
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "missing messages",
			body:     `{}`,
			wantMsg:  "Ungültiges Nachrichtenformat",
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "too many messages",
			body:     validChatBody(51, "Hi"),
			wantMsg:  "Zu viele Nachrichten (max 50)",
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "invalid role",
			body:     `{"messages":[{"role":"system","content":"Hi"}]}`,
			wantMsg:  "Ungültige Nachrichtenrolle",
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "non-string role",
			body:     `{"messages":[{"role":5,"content":"Hi"}]}`,
			wantMsg:  "Ungültige Nachrichtenrolle",
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "empty content",
			body:     `{"messages":[{"role":"user","content":""}]}`,
			wantMsg:  "Ungültiger Nachrichteninhalt",
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "non-string content",
			body:     `{"messages":[{"role":"user","content":5}]}`,
			wantMsg:  "Ungültiger Nachrichteninhalt",
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "content too long",
			body:     validChatBody(1, strings.Repeat("a", 4001)),
			wantMsg:  "Nachricht zu lang (max 4000 Zeichen)",
			wantCode: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeChatService{}
			app := newChatTestApp(svc, &fakeVerifier{userId: uuid.New()})

			rec := postChat(t, app, tt.body, "Bearer token")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec.Body))
			assert.Zero(t, svc.calls)
		})
	}
}

func TestChatRelaysStream(t *testing.T) {
	stream := "data: {\"choices\":[{\"delta\":{\"content\":\"Hallo\"}}]}\n\ndata: [DONE]\n\n"
	svc := &fakeChatService{result: &llm.StreamResult{
		Body:        io.NopCloser(strings.NewReader(stream)),
		ContentType: "text/event-stream",
	}}
	app := newChatTestApp(svc, &fakeVerifier{userId: uuid.New()})

	rec := postChat(t, app, validChatBody(1, "Hi"), "Bearer usertoken")

	assert.Equal(t, fiber.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.ContentType)
	assert.Equal(t, stream, rec.Body)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "usertoken", svc.token)
}

func TestChatErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "rate limited",
			err:      llm.ErrRateLimited,
			wantCode: fiber.StatusTooManyRequests,
			wantMsg:  "Rate limit erreicht. Bitte versuche es später erneut.",
		},
		{
			name:     "quota exhausted",
			err:      llm.ErrQuotaExhausted,
			wantCode: fiber.StatusPaymentRequired,
			wantMsg:  "Keine Credits mehr. Bitte lade dein Konto auf.",
		},
		{
			name:     "upstream failure",
			err:      &llm.UpstreamError{Status: 502, Body: "boom"},
			wantCode: fiber.StatusInternalServerError,
			wantMsg:  "AI-Dienst vorübergehend nicht verfügbar.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeChatService{err: tt.err}
			app := newChatTestApp(svc, &fakeVerifier{userId: uuid.New()})

			rec := postChat(t, app, validChatBody(1, "Hi"), "Bearer token")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec.Body))
			// The raw upstream body never reaches the caller.
			assert.NotContains(t, rec.Body, "boom")
		})
	}
}
