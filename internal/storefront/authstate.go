// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package storefront

import "sync"

// AuthSession is the storefront's view of the signed-in user. A zero UserID
// means no session is active.
type AuthSession struct {
	UserID   string
	Username string
	Email    string
}

// Present reports whether a user is signed in.
func (session AuthSession) Present() bool {
	return session.UserID != ""
}

// CancelFunc releases an auth-state subscription. Safe to call more than
// once; only the first call has an effect.
type CancelFunc func()

// AuthNotifier broadcasts authentication-state changes to subscribers.
//
// The notifier is long-lived for the app session. Every subscriber receives
// the current session immediately on subscribe, then every subsequent
// change. Subscriptions are released through the returned cancel handle.
type AuthNotifier struct {
	mu          sync.Mutex
	current     AuthSession
	subscribers map[int]func(AuthSession)
	nextID      int
}

// NewAuthNotifier constructs a notifier with no active session.
func NewAuthNotifier() *AuthNotifier {
	return &AuthNotifier{subscribers: map[int]func(AuthSession){}}
}

/*
Subscribe registers a callback for authentication-state changes.

Description: The callback fires synchronously with the current session
before Subscribe returns, then again on every SetSession. The returned
cancel handle must be invoked exactly once at teardown; extra calls are
no-ops.

Parameters:
  - callback: func(AuthSession)

Returns:
  - CancelFunc: Releases the subscription
*/
func (notifier *AuthNotifier) Subscribe(callback func(AuthSession)) CancelFunc {
	notifier.mu.Lock()
	id := notifier.nextID
	notifier.nextID++
	notifier.subscribers[id] = callback
	current := notifier.current
	notifier.mu.Unlock()

	callback(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			notifier.mu.Lock()
			delete(notifier.subscribers, id)
			notifier.mu.Unlock()
		})
	}
}

// SetSession replaces the active session and notifies every subscriber.
func (notifier *AuthNotifier) SetSession(session AuthSession) {
	notifier.mu.Lock()
	notifier.current = session
	callbacks := make([]func(AuthSession), 0, len(notifier.subscribers))
	for _, callback := range notifier.subscribers {
		callbacks = append(callbacks, callback)
	}
	notifier.mu.Unlock()

	for _, callback := range callbacks {
		callback(session)
	}
}

// Current returns the active session.
func (notifier *AuthNotifier) Current() AuthSession {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return notifier.current
}
