package chat_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendasim/internal/chat"
)

type recordingSink struct {
	mu     sync.Mutex
	chunks []string
	typing []bool
}

func (s *recordingSink) AppendChunk(chunk string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunk)
}

func (s *recordingSink) SetTyping(typing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.typing = append(s.typing, typing)
}

func (s *recordingSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.chunks...)
}

func (s *recordingSink) typingStates() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bool(nil), s.typing...)
}

func TestDeliverer_DeliversAllChunksInOrder(t *testing.T) {
	sink := &recordingSink{}
	d := chat.NewDeliverer(time.Millisecond, 2*time.Millisecond)

	d.Deliver(context.Background(), []string{"a", "b", "c"}, sink)

	assert.Equal(t, []string{"a", "b", "c"}, sink.snapshot())
	assert.Equal(t, []bool{true, false}, sink.typingStates())
}

func TestDeliverer_EmptySequenceIsNoop(t *testing.T) {
	sink := &recordingSink{}
	d := chat.NewDeliverer(time.Millisecond, 2*time.Millisecond)

	d.Deliver(context.Background(), nil, sink)

	assert.Empty(t, sink.snapshot())
	assert.Empty(t, sink.typingStates())
}

func TestDeliverer_NewSequenceSupersedesInFlight(t *testing.T) {
	sink := &recordingSink{}
	d := chat.NewDeliverer(50*time.Millisecond, 51*time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		d.Deliver(context.Background(), []string{"velho-1", "velho-2", "velho-3"}, sink)
	}()

	// Let the first chunk land, then supersede the sequence.
	time.Sleep(10 * time.Millisecond)
	d.Deliver(context.Background(), []string{"novo-1"}, sink)
	wg.Wait()

	chunks := sink.snapshot()
	require.NotEmpty(t, chunks)
	assert.Contains(t, chunks, "novo-1")
	assert.NotContains(t, chunks, "velho-2")
	assert.NotContains(t, chunks, "velho-3")
}

func TestDeliverer_CancelStopsDelivery(t *testing.T) {
	sink := &recordingSink{}
	d := chat.NewDeliverer(50*time.Millisecond, 51*time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		d.Deliver(context.Background(), []string{"um", "dois", "três"}, sink)
	}()

	time.Sleep(10 * time.Millisecond)
	d.Cancel()
	wg.Wait()

	chunks := sink.snapshot()
	assert.Equal(t, []string{"um"}, chunks)
}

func TestDeliverer_ContextCancellationStopsDelivery(t *testing.T) {
	sink := &recordingSink{}
	d := chat.NewDeliverer(50*time.Millisecond, 51*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		d.Deliver(ctx, []string{"um", "dois", "três"}, sink)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	wg.Wait()

	assert.Equal(t, []string{"um"}, sink.snapshot())
}

func TestDeliverer_DefaultsApplied(t *testing.T) {
	d := chat.NewDeliverer(0, 0)
	sink := &recordingSink{}

	// A single chunk never waits, so defaults do not slow this down.
	d.Deliver(context.Background(), []string{"só um"}, sink)
	assert.Equal(t, []string{"só um"}, sink.snapshot())
}
