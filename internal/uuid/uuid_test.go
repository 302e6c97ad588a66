package uuid_test

import (
	"sync"
	"testing"

	"github.com/KirkDiggler/dnd-autoroll/internal/uuid"
	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	first := gen.New()
	_, err := googleuuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, gen.New())
}

func TestSequenceGenerator(t *testing.T) {
	gen := uuid.NewSequenceGenerator("record")

	assert.Equal(t, "record-1", gen.New())
	assert.Equal(t, "record-2", gen.New())
}

func TestSequenceGenerator_Concurrent(t *testing.T) {
	gen := uuid.NewSequenceGenerator("id")

	var (
		mu   sync.Mutex
		seen = map[string]bool{}
		wg   sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.New()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
}
