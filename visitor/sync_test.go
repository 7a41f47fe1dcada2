package visitor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, int]()
	_, ok := m.Get("a")
	assert.False(t, ok)

	actual, loaded := m.GetOrPut("a", 1)
	assert.False(t, loaded)
	assert.Equal(t, 1, actual)

	actual, loaded = m.GetOrPut("a", 2)
	assert.True(t, loaded)
	assert.Equal(t, 1, actual)

	m.Put("a", 3)
	actual, ok = m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, actual)

	var waitGroup sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			results[i], _ = m.GetOrPut("b", i)
		}()
	}
	waitGroup.Wait()
	for _, result := range results {
		assert.Equal(t, results[0], result)
	}
}
