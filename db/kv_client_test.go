package db_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"canteen-widget/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clients(t *testing.T) []struct {
	name   string
	client db.KeyValueClient
} {
	return []struct {
		name   string
		client db.KeyValueClient
	}{
		{"MockKeyValueClient", db.NewMockKeyValueClient(context.Background())},
		{"FileClient", db.NewFileClient(context.Background(), filepath.Join(t.TempDir(), "canteen"))},
		// Replace with a real Redis client configuration for integration testing
		// {"GoRedisClient", db.NewGoRedisClient(context.Background(), realRedisClient, zap.NewNop())},
	}
}

// Test the Set and Get methods for every client
func TestKeyValueClient_SetAndGet(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			key := "test-key"
			value := `{"date": "16.10.2026"}`

			// Act
			err := test.client.Set(key, value)
			require.NoError(t, err)

			retrieved, err := test.client.Get(key)
			require.NoError(t, err)

			// Assert
			assert.Equal(t, value, retrieved)
		})
	}
}

func TestKeyValueClient_SetReplaces(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			require.NoError(t, test.client.Set("key", "first"))
			require.NoError(t, test.client.Set("key", "second"))

			retrieved, err := test.client.Get("key")
			require.NoError(t, err)
			assert.Equal(t, "second", retrieved)
		})
	}
}

func TestKeyValueClient_GetMissing(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.client.Get("missing")
			assert.ErrorIs(t, err, db.ErrKeyNotFound)
		})
	}
}

func TestKeyValueClient_Del(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			require.NoError(t, test.client.Set("key", "value"))
			require.NoError(t, test.client.Del("key"))

			_, err := test.client.Get("key")
			assert.ErrorIs(t, err, db.ErrKeyNotFound)

			// deleting twice is fine
			assert.NoError(t, test.client.Del("key"))
		})
	}
}

// Test Ping for every client
func TestKeyValueClient_Ping(t *testing.T) {
	for _, test := range clients(t) {
		t.Run(test.name, func(t *testing.T) {
			assert.NoError(t, test.client.Ping())
			assert.NotNil(t, test.client.GetContext())
		})
	}
}

func TestFileClient_Layout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "canteen")
	client := db.NewFileClient(context.Background(), dir)

	require.NoError(t, client.Set("meal_data", "{}"))

	assert.Equal(t, filepath.Join(dir, "meal_data.json"), client.Path("meal_data"))
	data, err := os.ReadFile(filepath.Join(dir, "meal_data.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	// no temporary files are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileClient_InvalidKeys(t *testing.T) {
	client := db.NewFileClient(context.Background(), t.TempDir())

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, client.Set(key, "value"), key)
		_, err := client.Get(key)
		assert.Error(t, err, key)
	}
}

func TestMockKeyValueClient_FailWrites(t *testing.T) {
	client := db.NewMockKeyValueClient(context.Background())
	client.FailWrites()

	assert.Error(t, client.Set("key", "value"))
	assert.Equal(t, 0, client.Len())
}
