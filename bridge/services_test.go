package bridge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthside/conduit/ai"
	"github.com/hearthside/conduit/ai/mock"
	"github.com/hearthside/conduit/core"
	"github.com/hearthside/conduit/hub"
)

// newTestIntegration builds a hub with the integration installed and
// one loaded entry backed by a mock provider.
func newTestIntegration(t *testing.T) (*hub.Hub, *Integration, *mock.MockProvider, *core.ConfigEntry) {
	t.Helper()

	h, err := hub.New(hub.WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	provider := mock.NewMockProviderWithServices(mock.NewMockAgent(), mock.NewMockImageGenerator())
	integration, err := New(h, WithProviderFactory(func(cfg *ai.Config) (ai.Provider, error) {
		return provider, nil
	}))
	require.NoError(t, err)

	entry := core.NewConfigEntry("Test Assistant", "sk-test", "asst_1")
	require.NoError(t, integration.SetupEntry(context.Background(), entry))

	return h, integration, provider, entry
}

func callData(entryID string, extra map[string]any) map[string]any {
	data := map[string]any{"config_entry": entryID}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func TestGenerateContentService(t *testing.T) {
	h, _, provider, entry := newTestIntegration(t)

	t.Run("returns assistant reply", func(t *testing.T) {
		provider.GetMockAgent().GenerateFunc = func(ctx context.Context, turns []core.Turn) (string, error) {
			require.Len(t, turns, 1)
			assert.Equal(t, core.RoleUser, turns[0].Role)
			assert.Equal(t, "describe my house", turns[0].Content)
			return "a lovely cottage", nil
		}

		resp, err := h.CallService(context.Background(), &hub.ServiceCall{
			Domain:  Domain,
			Service: ServiceGenerateContent,
			Data:    callData(entry.Id, map[string]any{"prompt": "describe my house"}),
		})

		require.NoError(t, err)
		assert.Equal(t, "a lovely cottage", resp["text"])
	})

	t.Run("attaches files as data urls", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.png")
		require.NoError(t, os.WriteFile(path, []byte{0x89, 0x50, 0x4e, 0x47}, 0o600))

		provider.GetMockAgent().GenerateFunc = func(ctx context.Context, turns []core.Turn) (string, error) {
			require.Len(t, turns[0].Attachments, 1)
			assert.True(t, strings.HasPrefix(turns[0].Attachments[0], "data:image/png;base64,"))
			return "nice photo", nil
		}

		_, err := h.CallService(context.Background(), &hub.ServiceCall{
			Domain:  Domain,
			Service: ServiceGenerateContent,
			Data: callData(entry.Id, map[string]any{
				"prompt":    "what is in this photo?",
				"filenames": []string{path},
			}),
		})
		require.NoError(t, err)
	})

	t.Run("unreadable file is a validation error", func(t *testing.T) {
		_, err := h.CallService(context.Background(), &hub.ServiceCall{
			Domain:  Domain,
			Service: ServiceGenerateContent,
			Data: callData(entry.Id, map[string]any{
				"prompt":    "p",
				"filenames": []string{"/nonexistent/file.png"},
			}),
		})

		var verr *hub.ValidationError
		require.True(t, errors.As(err, &verr))
	})

	t.Run("missing prompt is a validation error", func(t *testing.T) {
		_, err := h.CallService(context.Background(), &hub.ServiceCall{
			Domain:  Domain,
			Service: ServiceGenerateContent,
			Data:    callData(entry.Id, nil),
		})

		var verr *hub.ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("unknown entry is a validation error", func(t *testing.T) {
		_, err := h.CallService(context.Background(), &hub.ServiceCall{
			Domain:  Domain,
			Service: ServiceGenerateContent,
			Data:    callData("no-such-entry", map[string]any{"prompt": "p"}),
		})

		var verr *hub.ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("missing assistant id is a validation error", func(t *testing.T) {
		provider.GetMockAgent().GenerateFunc = func(ctx context.Context, turns []core.Turn) (string, error) {
			return "", ai.ErrMissingAssistantID
		}

		_, err := h.CallService(context.Background(), &hub.ServiceCall{
			Domain:  Domain,
			Service: ServiceGenerateContent,
			Data:    callData(entry.Id, map[string]any{"prompt": "p"}),
		})

		var verr *hub.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, errors.Is(err, ai.ErrMissingAssistantID))
	})

	t.Run("provider failure is a service error", func(t *testing.T) {
		provider.GetMockAgent().GenerateFunc = func(ctx context.Context, turns []core.Turn) (string, error) {
			return "", ai.ErrRunTimeout
		}

		_, err := h.CallService(context.Background(), &hub.ServiceCall{
			Domain:  Domain,
			Service: ServiceGenerateContent,
			Data:    callData(entry.Id, map[string]any{"prompt": "p"}),
		})

		var serr *hub.ServiceError
		require.True(t, errors.As(err, &serr))
		assert.True(t, errors.Is(err, ai.ErrRunTimeout))
	})
}

func TestGenerateImageService(t *testing.T) {
	h, _, provider, entry := newTestIntegration(t)

	t.Run("returns descriptor fields", func(t *testing.T) {
		resp, err := h.CallService(context.Background(), &hub.ServiceCall{
			Domain:  Domain,
			Service: ServiceGenerateImage,
			Data: callData(entry.Id, map[string]any{
				"prompt":  "a lighthouse at dusk",
				"size":    "1792x1024",
				"quality": "hd",
				"style":   "natural",
			}),
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp["url"])
		assert.Equal(t, "a lighthouse at dusk", resp["revised_prompt"])
		assert.NotZero(t, resp["created"])

		req := provider.GetMockImages().LastRequest
		require.NotNil(t, req)
		assert.Equal(t, "1792x1024", req.Size)
		assert.Equal(t, "hd", req.Quality)
		assert.Equal(t, "natural", req.Style)
	})

	t.Run("defaults are applied", func(t *testing.T) {
		_, err := h.CallService(context.Background(), &hub.ServiceCall{
			Domain:  Domain,
			Service: ServiceGenerateImage,
			Data:    callData(entry.Id, map[string]any{"prompt": "p"}),
		})

		require.NoError(t, err)
		req := provider.GetMockImages().LastRequest
		assert.Equal(t, ai.DefaultImageSize, req.Size)
		assert.Equal(t, ai.DefaultImageQuality, req.Quality)
		assert.Equal(t, ai.DefaultImageStyle, req.Style)
	})

	t.Run("bad size is rejected before dispatch", func(t *testing.T) {
		before := provider.GetMockImages().CallCount()

		_, err := h.CallService(context.Background(), &hub.ServiceCall{
			Domain:  Domain,
			Service: ServiceGenerateImage,
			Data:    callData(entry.Id, map[string]any{"prompt": "p", "size": "640x480"}),
		})

		var verr *hub.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, before, provider.GetMockImages().CallCount())
	})

	t.Run("provider failure is a service error", func(t *testing.T) {
		provider.GetMockImages().GenerateFunc = func(ctx context.Context, req *ai.ImageRequest) (*ai.Image, error) {
			return nil, ai.ErrNoImage
		}
		defer func() { provider.GetMockImages().GenerateFunc = nil }()

		_, err := h.CallService(context.Background(), &hub.ServiceCall{
			Domain:  Domain,
			Service: ServiceGenerateImage,
			Data:    callData(entry.Id, map[string]any{"prompt": "p"}),
		})

		var serr *hub.ServiceError
		require.True(t, errors.As(err, &serr))
		assert.True(t, errors.Is(err, ai.ErrNoImage))
	})
}
