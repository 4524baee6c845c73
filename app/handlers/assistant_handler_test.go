package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopmind/go-storefront/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/unrolled/render"
)

type stubLLM struct {
	reply string
	err   error
}

func (s stubLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: s.reply}},
	}, nil
}

func (s stubLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return s.reply, s.err
}

func newAssistantHandler(model llms.Model, modelErr error) *AssistantHandler {
	svc := services.NewAssistantService(services.LLMClients{
		Chat:     func() (llms.Model, error) { return model, modelErr },
		Generate: func() (llms.Model, error) { return model, modelErr },
	})
	return NewAssistantHandler(render.New(), svc)
}

func postJSON(path string, payload map[string]string) *http.Request {
	body, _ := json.Marshal(payload)
	return httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
}

func TestChatbotEndpoint(t *testing.T) {
	h := newAssistantHandler(stubLLM{reply: "Hello! How can I help?"}, nil)

	rec := httptest.NewRecorder()
	h.Chatbot(rec, postJSON("/chatbot", map[string]string{"message": "Hi"}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Hello! How can I help?", body["response"])
}

func TestChatbotEmptyMessage(t *testing.T) {
	h := newAssistantHandler(stubLLM{reply: "unused"}, nil)

	rec := httptest.NewRecorder()
	h.Chatbot(rec, postJSON("/chatbot", map[string]string{"message": "   "}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatbotModelFailure(t *testing.T) {
	h := newAssistantHandler(nil, errors.New("no api key"))

	rec := httptest.NewRecorder()
	h.Chatbot(rec, postJSON("/chatbot", map[string]string{"message": "Hi"}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "unavailable")
}

func TestGenerateDescriptionEndpoint(t *testing.T) {
	h := newAssistantHandler(stubLLM{reply: "A rich, full-bodied roast."}, nil)

	rec := httptest.NewRecorder()
	h.GenerateDescription(rec, postJSON("/generate-description", map[string]string{"prompt": "Coffee Beans"}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "A rich, full-bodied roast.", body["description"])
}

func TestGenerateDescriptionEmptyPrompt(t *testing.T) {
	h := newAssistantHandler(stubLLM{reply: "unused"}, nil)

	rec := httptest.NewRecorder()
	h.GenerateDescription(rec, postJSON("/generate-description", map[string]string{"prompt": ""}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
