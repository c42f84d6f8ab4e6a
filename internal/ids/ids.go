// Package ids provides identity and time sources for generated entities,
// plus the per-build sequencer that hands out human-readable references.
package ids

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator produces process-unique identifiers.
type Generator interface {
	NewID() string
}

// Clock returns the current time.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

// NewID implements Generator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Counter issues prefixed sequential identifiers. It is used where
// reproducible ids are needed, such as tests and diffable exports.
type Counter struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewCounter creates a Counter whose first id is "<prefix>-1".
func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

// NewID implements Generator.
func (c *Counter) NewID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	return fmt.Sprintf("%s-%d", c.prefix, c.next)
}

// Sequencer assigns ids and sequential references (POT-1, POT-2, ...) to the
// elements of a single build. A Sequencer is not shared between builds.
type Sequencer struct {
	gen    Generator
	counts map[string]int
}

// NewSequencer creates a Sequencer backed by gen. A nil gen falls back to
// UUIDGenerator.
func NewSequencer(gen Generator) *Sequencer {
	if gen == nil {
		gen = UUIDGenerator{}
	}
	return &Sequencer{gen: gen, counts: make(map[string]int)}
}

// Next returns a fresh id and the next reference for prefix.
func (s *Sequencer) Next(prefix string) (id, ref string) {
	s.counts[prefix]++
	return s.gen.NewID(), fmt.Sprintf("%s-%d", prefix, s.counts[prefix])
}

// ID returns a fresh id without consuming a reference.
func (s *Sequencer) ID() string {
	return s.gen.NewID()
}

// Count reports how many references were issued for prefix.
func (s *Sequencer) Count(prefix string) int {
	return s.counts[prefix]
}
