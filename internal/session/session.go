// Package session provides an injectable session context for the
// signed-in user. It replaces process-global auth state: components
// that need identity receive a *Context and subscribe to changes with
// an explicit unsubscribe lifecycle.
package session

import (
	"sync"

	"fintrack/internal/models"
)

// Listener is notified when the session's user changes. A nil user
// means the session was cleared.
type Listener func(user *models.User)

// Context holds the current user for one client session. Safe for
// concurrent use.
type Context struct {
	mu        sync.RWMutex
	user      *models.User
	nextID    int
	listeners map[int]Listener
}

// New returns an empty session context.
func New() *Context {
	return &Context{listeners: make(map[int]Listener)}
}

// Current returns a copy of the session's user, or nil when signed out.
// Callers get a snapshot; mutating it does not affect the session.
func (c *Context) Current() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.user == nil {
		return nil
	}
	snapshot := *c.user
	return &snapshot
}

// Set replaces the session's user and notifies subscribers.
func (c *Context) Set(user *models.User) {
	c.mu.Lock()
	if user != nil {
		copied := *user
		user = &copied
	}
	c.user = user
	listeners := make([]Listener, 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	// Notify outside the lock so a listener may call back into the
	// session without deadlocking.
	for _, fn := range listeners {
		fn(user)
	}
}

// Clear signs the session out and notifies subscribers with nil.
func (c *Context) Clear() {
	c.Set(nil)
}

// Subscribe registers a listener and returns its unsubscribe func.
// Unsubscribing more than once is harmless.
func (c *Context) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Registry hands out one session context per user id, creating them on
// demand. Registry-wide listeners are attached to every context,
// including ones created later.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]*Context
	listeners []Listener
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Context)}
}

// Get returns the session context for a user id, creating it if needed.
func (r *Registry) Get(userID string) *Context {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, ok := r.sessions[userID]
	if !ok {
		ctx = New()
		for _, fn := range r.listeners {
			ctx.Subscribe(fn)
		}
		r.sessions[userID] = ctx
	}
	return ctx
}

// SubscribeAll attaches a listener to every existing and future
// session context.
func (r *Registry) SubscribeAll(fn Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = append(r.listeners, fn)
	for _, ctx := range r.sessions {
		ctx.Subscribe(fn)
	}
}

// Drop removes a user's session context, clearing it first so
// subscribers observe the sign-out.
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	ctx, ok := r.sessions[userID]
	delete(r.sessions, userID)
	r.mu.Unlock()

	if ok {
		ctx.Clear()
	}
}
