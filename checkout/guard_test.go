package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardSetSingleFlight(t *testing.T) {
	var set guardSet

	assert.True(t, set.begin("checkout:a"))
	assert.False(t, set.begin("checkout:a"), "second begin for the same key must be rejected")
	assert.True(t, set.begin("checkout:b"), "other keys are independent")

	set.finish("checkout:a", false)
	assert.True(t, set.begin("checkout:a"), "finished key can begin again")
}

func TestGuardSetEvictsIdleGuards(t *testing.T) {
	var set guardSet

	for _, key := range []string{"checkout:a", "checkout:b", "checkout:c"} {
		assert.True(t, set.begin(key))
		set.finish(key, false)
	}

	// returning to idle releases the entry, so the set tracks in-flight
	// work rather than every key ever touched
	set.mu.Lock()
	assert.Empty(t, set.guards)
	set.mu.Unlock()
}

func TestGuardSetKeepsDoneGuards(t *testing.T) {
	var set guardSet

	assert.True(t, set.begin("order:1"))
	set.finish("order:1", true)

	assert.Equal(t, RequestStateDone, set.current("order:1"))
	assert.False(t, set.begin("order:1"), "a done key never begins again")
}
