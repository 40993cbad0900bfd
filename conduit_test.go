package conduit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthside/conduit/ai"
	"github.com/hearthside/conduit/ai/mock"
	"github.com/hearthside/conduit/bridge"
	"github.com/hearthside/conduit/hub"
)

func mockFactory(cfg *ai.Config) (ai.Provider, error) {
	return mock.NewMockProvider(), nil
}

func TestOpenAndClose(t *testing.T) {
	c, err := Open(context.Background(), "", WithInMemory(), WithProviderFactory(mockFactory))
	require.NoError(t, err)

	assert.NotNil(t, c.Hub())
	assert.NotNil(t, c.Entries())
	assert.NotNil(t, c.Integration())

	require.NoError(t, c.Close())
}

func TestEntryLifecycle(t *testing.T) {
	c, err := Open(context.Background(), "", WithInMemory(), WithProviderFactory(mockFactory))
	require.NoError(t, err)
	defer c.Close()

	entry, err := c.AddEntry(context.Background(), "Assistant", "sk-test", "asst_1")
	require.NoError(t, err)
	require.NotNil(t, entry)

	state, ok := c.Hub().EntryStateOf(entry.Id)
	require.True(t, ok)
	assert.Equal(t, hub.EntryStateLoaded, state)

	t.Run("generate content", func(t *testing.T) {
		text, err := c.GenerateContent(context.Background(), entry.Id, "hello", nil)
		require.NoError(t, err)
		assert.Equal(t, "echo: hello", text)
	})

	t.Run("generate image", func(t *testing.T) {
		resp, err := c.GenerateImage(context.Background(), entry.Id, "a lighthouse", &ai.ImageRequest{Size: "1792x1024"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp["url"])
	})

	t.Run("remove entry", func(t *testing.T) {
		require.NoError(t, c.RemoveEntry(context.Background(), entry.Id))

		_, err := c.GenerateContent(context.Background(), entry.Id, "hello", nil)
		var verr *hub.ValidationError
		assert.True(t, errors.As(err, &verr))
	})
}

func TestEntriesReloadOnOpen(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(context.Background(), dir, WithProviderFactory(mockFactory))
	require.NoError(t, err)

	entry, err := c.AddEntry(context.Background(), "Assistant", "sk-test", "asst_1")
	require.NoError(t, err)
	require.NoError(t, c.Close())

	reopened, err := Open(context.Background(), dir, WithProviderFactory(mockFactory))
	require.NoError(t, err)
	defer reopened.Close()

	state, ok := reopened.Hub().EntryStateOf(entry.Id)
	require.True(t, ok)
	assert.Equal(t, hub.EntryStateLoaded, state)

	text, err := reopened.GenerateContent(context.Background(), entry.Id, "still here?", nil)
	require.NoError(t, err)
	assert.Equal(t, "echo: still here?", text)
}

func TestSetupFailureDoesNotAbortOpen(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(context.Background(), dir, WithProviderFactory(mockFactory))
	require.NoError(t, err)
	_, err = c.AddEntry(context.Background(), "Assistant", "sk-test", "asst_1")
	require.NoError(t, err)
	require.NoError(t, c.Close())

	// On reload every verification fails transiently.
	failingFactory := func(cfg *ai.Config) (ai.Provider, error) {
		p := mock.NewMockProviderWithServices(mock.NewMockAgent(), mock.NewMockImageGenerator())
		p.VerifyFunc = func(ctx context.Context) error { return errors.New("connection refused") }
		return p, nil
	}

	reopened, err := Open(context.Background(), dir, WithProviderFactory(bridge.ProviderFactory(failingFactory)))
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.Entries().ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	state, ok := reopened.Hub().EntryStateOf(entries[0].Id)
	require.True(t, ok)
	assert.Equal(t, hub.EntryStateSetupRetry, state)
}
