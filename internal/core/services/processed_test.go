package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessedSet_AddHasClear(t *testing.T) {
	set := newProcessedSet(10)

	assert.False(t, set.has("r1"))
	set.add("r1")
	assert.True(t, set.has("r1"))
	assert.Equal(t, 1, set.size())

	set.clear()
	assert.False(t, set.has("r1"))
	assert.Equal(t, 0, set.size())
}

func TestProcessedSet_DuplicateAdds(t *testing.T) {
	set := newProcessedSet(10)

	set.add("r1")
	set.add("r1")
	set.add("r1")

	assert.Equal(t, 1, set.size())
}

func TestProcessedSet_EvictsOldestFirst(t *testing.T) {
	set := newProcessedSet(3)

	for i := 0; i < 4; i++ {
		set.add(fmt.Sprintf("r%d", i))
	}

	assert.Equal(t, 3, set.size())
	assert.False(t, set.has("r0"), "oldest entry is evicted")
	assert.True(t, set.has("r1"))
	assert.True(t, set.has("r3"))
}

func TestProcessedSet_ZeroLimitUsesDefault(t *testing.T) {
	set := newProcessedSet(0)

	assert.Equal(t, defaultProcessedLimit, set.limit)
}
