package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	type payload struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}

	require.NoError(t, store.Save(ctx, "k", payload{Name: "weekend", Items: []string{"garlic"}}))

	var got payload
	found, err := store.Load(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "weekend", got.Name)
	assert.Equal(t, []string{"garlic"}, got.Items)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()
	var got map[string]string
	found, err := store.Load(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "k", "v"))
	require.NoError(t, store.Delete(ctx, "k"))

	var got string
	found, err := store.Load(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserKeyScoping(t *testing.T) {
	a := UserKey(KeyShoppingLists, "user-a")
	b := UserKey(KeyShoppingLists, "user-b")
	assert.NotEqual(t, a, b)
	assert.Equal(t, "savedShoppingLists:user-a", a)
}
