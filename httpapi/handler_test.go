package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthside/conduit/ai"
	"github.com/hearthside/conduit/ai/mock"
	"github.com/hearthside/conduit/bridge"
	"github.com/hearthside/conduit/core"
	"github.com/hearthside/conduit/hub"
	badgerstore "github.com/hearthside/conduit/storage/badger"
)

type testServer struct {
	router   *echo.Echo
	hub      *hub.Hub
	provider *mock.MockProvider
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	h, err := hub.New(hub.WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	repo, backend, err := badgerstore.NewMemoryEntryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
		_ = backend.Close()
	})

	provider := mock.NewMockProviderWithServices(mock.NewMockAgent(), mock.NewMockImageGenerator())
	integration, err := bridge.New(h, bridge.WithProviderFactory(func(cfg *ai.Config) (ai.Provider, error) {
		return provider, nil
	}))
	require.NoError(t, err)

	router := Register(slog.Default(), NewHandler(h, repo, integration))
	return &testServer{router: router, hub: h, provider: provider}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) createEntry(t *testing.T) EntryResponse {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/entries", CreateEntryRequest{
		Title:       "Test Assistant",
		APIKey:      "sk-test",
		AssistantID: "asst_1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var entry EntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	return entry
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEntryEndpoints(t *testing.T) {
	s := newTestServer(t)

	t.Run("create loads the entry", func(t *testing.T) {
		entry := s.createEntry(t)

		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "Test Assistant", entry.Title)
		assert.Equal(t, "loaded", entry.State)
	})

	t.Run("api key never appears in responses", func(t *testing.T) {
		s.createEntry(t)

		rec := s.do(t, http.MethodGet, "/api/v1/entries", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "sk-test")
		assert.NotContains(t, rec.Body.String(), "api_key")
	})

	t.Run("get single entry", func(t *testing.T) {
		entry := s.createEntry(t)

		rec := s.do(t, http.MethodGet, "/api/v1/entries/"+entry.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got EntryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, entry.ID, got.ID)
	})

	t.Run("missing entry is 404", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/entries/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid create is 400", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/entries", map[string]string{"title": "no key"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete unloads and removes", func(t *testing.T) {
		entry := s.createEntry(t)

		rec := s.do(t, http.MethodDelete, "/api/v1/entries/"+entry.ID, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = s.do(t, http.MethodGet, "/api/v1/entries/"+entry.ID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = s.do(t, http.MethodDelete, "/api/v1/entries/"+entry.ID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServiceEndpoint(t *testing.T) {
	s := newTestServer(t)
	entry := s.createEntry(t)

	t.Run("generate_image round trip", func(t *testing.T) {
		rec := s.do(t, http.MethodPost,
			fmt.Sprintf("/api/v1/services/%s/%s", bridge.Domain, bridge.ServiceGenerateImage),
			map[string]any{"config_entry": entry.ID, "prompt": "a lighthouse"})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["url"])
	})

	t.Run("unknown service is 400", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/services/openai_bridge/nope",
			map[string]any{"config_entry": entry.ID})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("provider failure is 502", func(t *testing.T) {
		s.provider.GetMockImages().GenerateFunc = func(ctx context.Context, req *ai.ImageRequest) (*ai.Image, error) {
			return nil, ai.ErrNoImage
		}
		defer func() { s.provider.GetMockImages().GenerateFunc = nil }()

		rec := s.do(t, http.MethodPost,
			fmt.Sprintf("/api/v1/services/%s/%s", bridge.Domain, bridge.ServiceGenerateImage),
			map[string]any{"config_entry": entry.ID, "prompt": "p"})
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("bad payload is 400", func(t *testing.T) {
		rec := s.do(t, http.MethodPost,
			fmt.Sprintf("/api/v1/services/%s/%s", bridge.Domain, bridge.ServiceGenerateImage),
			map[string]any{"config_entry": entry.ID, "prompt": "p", "size": "640x480"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestConversationEndpoint(t *testing.T) {
	s := newTestServer(t)
	entry := s.createEntry(t)

	t.Run("new conversation gets an id", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/conversation/"+entry.ID,
			ConversationRequest{Text: "hello"})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ConversationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "echo: hello", resp.Reply)
		assert.NotEmpty(t, resp.ConversationID)
	})

	t.Run("follow-up turns carry history", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/conversation/"+entry.ID,
			ConversationRequest{Text: "first"})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp ConversationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		rec = s.do(t, http.MethodPost, "/api/v1/conversation/"+entry.ID,
			ConversationRequest{Text: "second", ConversationID: resp.ConversationID})
		require.Equal(t, http.StatusOK, rec.Code)

		turns := s.provider.GetMockAgent().LastTurns
		require.Len(t, turns, 3)
		assert.Equal(t, "first", turns[0].Content)
		assert.Equal(t, core.RoleAssistant, turns[1].Role)
		assert.Equal(t, "second", turns[2].Content)
	})

	t.Run("unknown entry is 404", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/conversation/nope",
			ConversationRequest{Text: "hello"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty text is 400", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/conversation/"+entry.ID,
			ConversationRequest{Text: ""})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
