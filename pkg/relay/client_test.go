package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendNotConfigured(t *testing.T) {
	c := NewClient("")
	_, err := c.Send(context.Background(), Request{Type: "chat_message"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendPostsConversationAndExtractsReply(t *testing.T) {
	var received Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"X"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	reply, err := c.Send(context.Background(), Request{
		Messages: []Turn{{Role: "user", Content: "hi"}},
		Type:     "chat_message",
		Message:  "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "X", reply)
	assert.Equal(t, "chat_message", received.Type)
	require.Len(t, received.Messages, 1)
	assert.Equal(t, "hi", received.Messages[0].Content)
}

func TestSendNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Send(context.Background(), Request{Type: "chat_message"})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
}

func TestExtractReplyAssistantField(t *testing.T) {
	got := ExtractReply([]byte(`{"assistant":"hello there"}`))
	assert.Equal(t, "hello there", got)
}

func TestExtractReplyChatCompletionShape(t *testing.T) {
	got := ExtractReply([]byte(`{"choices":[{"message":{"content":"X"}}]}`))
	assert.Equal(t, "X", got)
}

func TestExtractReplyMessageString(t *testing.T) {
	got := ExtractReply([]byte(`{"message":"plain"}`))
	assert.Equal(t, "plain", got)
}

func TestExtractReplyMessageObject(t *testing.T) {
	// Ollama-shaped body: message is an object with a content field.
	got := ExtractReply([]byte(`{"model":"llama3","message":{"role":"assistant","content":"from ollama"},"done":true}`))
	assert.Equal(t, "from ollama", got)
}

func TestExtractReplyOrderPrefersAssistant(t *testing.T) {
	got := ExtractReply([]byte(`{"assistant":"first","message":"second"}`))
	assert.Equal(t, "first", got)
}

func TestExtractReplyFallsBackToRawBody(t *testing.T) {
	body := `{"unexpected":{"shape":true}}`
	assert.Equal(t, body, ExtractReply([]byte(body)))
}

func TestExtractReplyNonJSONBody(t *testing.T) {
	assert.Equal(t, "not json", ExtractReply([]byte("not json")))
}
