package controller

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeRelayService struct {
	body []byte
	err  error
	last *dto.RelayRequest
}

func (f *fakeRelayService) Forward(ctx context.Context, request *dto.RelayRequest) ([]byte, error) {
	f.last = request
	return f.body, f.err
}

func newRelayApp(svc *fakeRelayService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewRelayController(svc).RegisterRoutes(app)
	return app
}

func TestRelayPreflight(t *testing.T) {
	app := newRelayApp(&fakeRelayService{})

	req := httptest.NewRequest("OPTIONS", "/", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
}

func TestRelayForwardReturnsUpstreamBodyVerbatim(t *testing.T) {
	upstream := `{"error":{"message":"insufficient_quota"}}`
	svc := &fakeRelayService{body: []byte(upstream)}
	app := newRelayApp(svc)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"type":"chat_message","messages":[{"role":"user","content":"hi"}]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, upstream, string(body))

	assert.NotNil(t, svc.last)
	assert.Equal(t, "chat_message", svc.last.Type)
	assert.Len(t, svc.last.Messages, 1)
}

func TestRelayForwardRejectsMalformedBody(t *testing.T) {
	app := newRelayApp(&fakeRelayService{})

	req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRelayForwardUpstreamFailure(t *testing.T) {
	app := newRelayApp(&fakeRelayService{err: errors.New("dial tcp: connection refused")})

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"type":"chat_message"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
