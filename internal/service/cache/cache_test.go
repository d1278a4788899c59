package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponses_LookupMiss(t *testing.T) {
	c := New(10)

	_, ok := c.Lookup("qual e o prazo")
	assert.False(t, ok)
}

func TestResponses_InsertAndLookup(t *testing.T) {
	c := New(10)

	require.True(t, c.Insert("qual e o prazo", "Quinze dias."))

	answer, ok := c.Lookup("qual e o prazo")
	require.True(t, ok)
	assert.Equal(t, "Quinze dias.", answer)
}

func TestResponses_FirstEntryWins(t *testing.T) {
	c := New(10)

	c.Insert("pergunta", "primeira")
	assert.False(t, c.Insert("pergunta", "segunda"))

	answer, _ := c.Lookup("pergunta")
	assert.Equal(t, "primeira", answer)
}

func TestResponses_FullCacheRejectsInserts(t *testing.T) {
	const max = 5
	c := New(max)

	for i := 0; i < max; i++ {
		require.True(t, c.Insert(fmt.Sprintf("k%d", i), "v"))
	}

	assert.False(t, c.Insert("extra", "v"))
	_, ok := c.Lookup("extra")
	assert.False(t, ok)
	assert.Equal(t, max, c.Len())

	_, ok = c.Lookup("k0")
	assert.True(t, ok, "existing entries are never evicted")
}

func TestResponses_DefaultSize(t *testing.T) {
	c := New(0)
	for i := 0; i < DefaultMaxEntries+10; i++ {
		c.Insert(fmt.Sprintf("k%d", i), "v")
	}
	assert.Equal(t, DefaultMaxEntries, c.Len())
}

func TestResponses_ConcurrentInsertsRespectCapacity(t *testing.T) {
	const max = 50
	c := New(max)

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Insert(fmt.Sprintf("k%d", i), "v")
			c.Lookup("k0")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, max, c.Len())
}
