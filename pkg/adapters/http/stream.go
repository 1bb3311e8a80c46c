package http

import (
	"log/slog"
	"sync"
)

// StreamManager fans stage events out to the SSE clients of each puzzle.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // puzzle ID -> set of channels
	logger      *slog.Logger
}

// NewStreamManager creates an empty StreamManager.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a channel for the puzzle. The returned function
// unregisters and closes it.
func (sm *StreamManager) Subscribe(puzzleID string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[puzzleID]; !ok {
		sm.subscribers[puzzleID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[puzzleID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[puzzleID]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, puzzleID)
			}
		}
	}
}

// Broadcast sends msg to every subscriber of the puzzle without blocking.
func (sm *StreamManager) Broadcast(puzzleID string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[puzzleID] {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			sm.logger.Warn("SSE: Client buffer full, dropping message", "puzzle", puzzleID)
		}
	}
}

// Subscribers returns the number of active subscribers for the puzzle.
func (sm *StreamManager) Subscribers(puzzleID string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers[puzzleID])
}
