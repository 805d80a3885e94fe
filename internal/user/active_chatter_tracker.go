package user

import (
	"sync"
	"time"
)

// ActiveChatterTracker tracks users who have recently sent messages.
// Duel targets must have chatted recently so people can't be challenged
// while away from the stream.
type ActiveChatterTracker struct {
	mu       sync.RWMutex
	chatters map[string]*chatterInfo
	expiry   time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// chatterInfo holds information about an active chatter
type chatterInfo struct {
	Username      string
	Platform      string
	LastMessageAt time.Time
}

// NewActiveChatterTracker creates a new tracker and starts the cleanup goroutine.
// expiry is how long a user remains considered active after their last message.
func NewActiveChatterTracker(expiry time.Duration) *ActiveChatterTracker {
	tracker := &ActiveChatterTracker{
		chatters: make(map[string]*chatterInfo),
		expiry:   expiry,
		stopCh:   make(chan struct{}),
	}
	go tracker.cleanupLoop()
	return tracker
}

// Track adds or updates a chatter's last message timestamp
func (t *ActiveChatterTracker) Track(platform, username string) {
	key := Canonicalize(username)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.chatters[key] = &chatterInfo{
		Username:      username,
		Platform:      platform,
		LastMessageAt: time.Now(),
	}
}

// IsActive reports whether the user sent a message within the tracker's expiry window
func (t *ActiveChatterTracker) IsActive(username string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	info, ok := t.chatters[Canonicalize(username)]
	if !ok {
		return false
	}
	return time.Since(info.LastMessageAt) <= t.expiry
}

// LastSeen returns when the user last chatted, false if never seen
func (t *ActiveChatterTracker) LastSeen(username string) (time.Time, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	info, ok := t.chatters[Canonicalize(username)]
	if !ok {
		return time.Time{}, false
	}
	return info.LastMessageAt, true
}

// Remove removes a chatter from the active list
func (t *ActiveChatterTracker) Remove(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.chatters, Canonicalize(username))
}

// Count returns the number of tracked chatters, expired entries included
func (t *ActiveChatterTracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.chatters)
}

// Stop terminates the cleanup goroutine
func (t *ActiveChatterTracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopCh)
	})
}

// cleanupLoop periodically removes expired chatters
func (t *ActiveChatterTracker) cleanupLoop() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.cleanup()
		case <-t.stopCh:
			return
		}
	}
}

// cleanup removes chatters whose last message is older than the expiry window
func (t *ActiveChatterTracker) cleanup() {
	t.mu.Lock()
	defer t.mu.Unlock()

	threshold := time.Now().Add(-t.expiry)
	for key, info := range t.chatters {
		if info.LastMessageAt.Before(threshold) {
			delete(t.chatters, key)
		}
	}
}
