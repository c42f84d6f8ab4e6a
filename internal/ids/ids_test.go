package ids

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	var g UUIDGenerator
	a, b := g.NewID(), g.NewID()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestCounter(t *testing.T) {
	c := NewCounter("el")
	assert.Equal(t, "el-1", c.NewID())
	assert.Equal(t, "el-2", c.NewID())
}

func TestSequencer(t *testing.T) {
	s := NewSequencer(NewCounter("id"))

	id, ref := s.Next("POT")
	assert.Equal(t, "id-1", id)
	assert.Equal(t, "POT-1", ref)

	_, ref = s.Next("POT")
	assert.Equal(t, "POT-2", ref)

	_, ref = s.Next("PAN")
	assert.Equal(t, "PAN-1", ref)

	assert.Equal(t, 2, s.Count("POT"))
	assert.Equal(t, 0, s.Count("ARB"))
	assert.Equal(t, "id-4", s.ID())
}

func TestNilGeneratorFallsBackToUUID(t *testing.T) {
	s := NewSequencer(nil)
	id, _ := s.Next("X")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := FixedClock(at)
	assert.Equal(t, at, clock())
	assert.Equal(t, time.UTC, SystemClock().Location())
}
