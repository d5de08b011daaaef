package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	store.Set("search:v1:abc", []byte(`{"total":3}`), time.Minute)

	value, ok := store.Get("search:v1:abc")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"total":3}`), value)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	current := time.Now()
	store.now = func() time.Time { return current }

	store.Set("suggest:v1:cas", []byte(`["case law"]`), 300*time.Second)

	_, ok := store.Get("suggest:v1:cas")
	assert.True(t, ok)

	current = current.Add(301 * time.Second)
	_, ok = store.Get("suggest:v1:cas")
	assert.False(t, ok, "entry should expire after its TTL")
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	store.Set("popular:v1:global", []byte(`["contract"]`), time.Hour)
	store.Delete("popular:v1:global")

	_, ok := store.Get("popular:v1:global")
	assert.False(t, ok)
}

func TestMemoryStoreNamespacesAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	store.Set("search:v1:k", []byte("a"), time.Hour)
	store.Set("suggest:v1:k", []byte("b"), time.Hour)

	v1, _ := store.Get("search:v1:k")
	v2, _ := store.Get("suggest:v1:k")
	assert.Equal(t, []byte("a"), v1)
	assert.Equal(t, []byte("b"), v2)
}
