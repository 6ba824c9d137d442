// Event emission — best-effort notifications of notable occurrences.
// The core never assumes a listener exists; with zero observers every
// emission is a safe no-op (beyond the bounded recent ring).
package diplomacy

import "github.com/talgya/crowncourt/internal/royals"

// EventKind identifies the semantic type of an event.
type EventKind string

const (
	EventKingdomCreated   EventKind = "kingdom_created"
	EventKingdomDestroyed EventKind = "kingdom_destroyed"
	EventRulerSucceeded   EventKind = "ruler_succeeded"
	EventMarriageFormed   EventKind = "marriage_formed"
	EventMarriageRejected EventKind = "marriage_rejected"
	EventGiftSent         EventKind = "gift_sent"
)

// maxRecentEvents bounds the in-memory event ring.
const maxRecentEvents = 256

// Event is a notable occurrence in the diplomacy simulation.
type Event struct {
	Day         int       `json:"day"`
	Kind        EventKind `json:"kind"`
	Description string    `json:"description"`

	KingdomID   string         `json:"kingdom_id,omitempty"`
	KingdomName string         `json:"kingdom_name,omitempty"`
	Person      *royals.Person `json:"person,omitempty"` // Spouse, new ruler, etc.
	SeekerID    string         `json:"seeker_id,omitempty"`
	Dowry       *Dowry         `json:"dowry,omitempty"`
}

// Observer receives events as they happen. Notify is called synchronously
// while the core is mid-operation; observers must not call back into the
// core from Notify.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) Notify(e Event) { f(e) }

// Subscribe registers an observer for future events.
func (c *Core) Subscribe(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// RecentEvents returns up to limit of the most recent events, newest
// last. A non-positive limit returns nothing.
func (c *Core) RecentEvents(limit int) []Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit <= 0 {
		return nil
	}
	n := len(c.recent)
	if limit < n {
		n = limit
	}
	out := make([]Event, n)
	copy(out, c.recent[len(c.recent)-n:])
	return out
}

// emit records an event and notifies every observer. Callers hold c.mu.
func (c *Core) emit(e Event) {
	c.recent = append(c.recent, e)
	if len(c.recent) > maxRecentEvents {
		c.recent = c.recent[len(c.recent)-maxRecentEvents:]
	}
	for _, o := range c.observers {
		o.Notify(e)
	}
}
