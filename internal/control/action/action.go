// Package action provides actions that keys can be bound to.
package action

// An Action is something a key press can trigger.
type Action interface {
	// Do performs the action.
	Do()

	// Explain returns a short human-readable description of what Do does.
	Explain() string
}
