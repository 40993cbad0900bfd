package storage

import (
	"testing"
	"time"

	"github.com/hearthside/conduit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("entry-abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}

	t.Run("empty data", func(t *testing.T) {
		_, err := UnmarshalID([]byte{})
		assert.Error(t, err)
	})
}

func TestMarshalUnmarshalConfigEntry(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name  string
		entry *core.ConfigEntry
	}{
		{
			name: "full entry",
			entry: &core.ConfigEntry{
				Id:          "0d4e3c52-7a10-4a9e-9a36-29f35f1e9f01",
				Title:       "Living room",
				APIKey:      "sk-test-key",
				AssistantID: "asst_abc123",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		{
			name: "entry without assistant",
			entry: &core.ConfigEntry{
				Id:        "b61d8c1e-96eb-4f3a-9a2d-cf5813c3f002",
				Title:     "Images only",
				APIKey:    "sk-image-key",
				CreatedAt: now,
				UpdatedAt: now.Add(time.Hour),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalConfigEntry(tt.entry)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalConfigEntry(data)
			require.NoError(t, err)
			assert.Equal(t, tt.entry, decoded)
		})
	}

	t.Run("truncated data", func(t *testing.T) {
		data := MarshalConfigEntry(&core.ConfigEntry{Id: "x", Title: "t", APIKey: "k"})
		_, err := UnmarshalConfigEntry(data[:len(data)-2])
		assert.Error(t, err)
	})
}
