package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendasim/internal/config"
)

func testChatCfg() config.ChatConfig {
	return config.ChatConfig{MinDelayMS: 50, MaxDelayMS: 51}
}

type collectingSink struct {
	mu     sync.Mutex
	chunks []string
}

func (s *collectingSink) AppendChunk(chunk string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunk)
}

func (s *collectingSink) SetTyping(bool) {}

func (s *collectingSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.chunks...)
}

func TestSimulationHandler_DelivererReusedAcrossTurns(t *testing.T) {
	h := NewSimulationHandler(nil, testChatCfg())
	sessionID := uuid.New()

	first := h.delivererFor(sessionID)
	second := h.delivererFor(sessionID)

	assert.Same(t, first, second)
	assert.NotSame(t, first, h.delivererFor(uuid.New()))
}

func TestSimulationHandler_NewTurnSupersedesInFlightDelivery(t *testing.T) {
	h := NewSimulationHandler(nil, testChatCfg())
	sessionID := uuid.New()
	sink := &collectingSink{}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.delivererFor(sessionID).Deliver(context.Background(), []string{"velho-1", "velho-2", "velho-3"}, sink)
	}()

	// Let the first chunk land, then start the next turn's delivery.
	time.Sleep(10 * time.Millisecond)
	h.delivererFor(sessionID).Deliver(context.Background(), []string{"novo-1"}, sink)
	wg.Wait()

	chunks := sink.snapshot()
	require.NotEmpty(t, chunks)
	assert.Contains(t, chunks, "novo-1")
	assert.NotContains(t, chunks, "velho-2")
	assert.NotContains(t, chunks, "velho-3")
}

func TestSimulationHandler_DropDelivererCancelsAndForgets(t *testing.T) {
	h := NewSimulationHandler(nil, testChatCfg())
	sessionID := uuid.New()
	sink := &collectingSink{}

	before := h.delivererFor(sessionID)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		before.Deliver(context.Background(), []string{"um", "dois", "três"}, sink)
	}()

	time.Sleep(10 * time.Millisecond)
	h.dropDeliverer(sessionID)
	wg.Wait()

	assert.Equal(t, []string{"um"}, sink.snapshot())
	assert.NotSame(t, before, h.delivererFor(sessionID))
}
