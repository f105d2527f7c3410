package domain

import (
	"context"
	"time"
)

// Event represents an event created by an organizer. Identifier is the
// public lookup key; CreatorToken is the secret credential proving control
// over the event and is never exposed outside create responses.
type Event struct {
	Identifier   string    `json:"identifier"`
	CreatorToken string    `json:"-"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Time         time.Time `json:"time"`
	CreatorName  *string   `json:"creator_name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Image        *string   `json:"image,omitempty"`
}

// NewEvent returns a new Event with the given required fields. Identifier
// and CreatorToken are assigned by the service on create.
func NewEvent(title, location string, t time.Time) *Event {
	return &Event{
		Title:    title,
		Location: location,
		Time:     t,
	}
}

// EventUpdate carries a partial update: nil fields are left untouched.
// Identifier and CreatorToken have no update path; they are write-once.
type EventUpdate struct {
	Title       *string
	Location    *string
	Time        *time.Time
	CreatorName *string
	Description *string
	Image       *string
}

// Empty reports whether the update changes nothing.
func (u EventUpdate) Empty() bool {
	return u.Title == nil && u.Location == nil && u.Time == nil &&
		u.CreatorName == nil && u.Description == nil && u.Image == nil
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByIdentifier(ctx context.Context, identifier string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, identifier string, upd EventUpdate) (*Event, error)
	// Delete removes the event; attendee rows cascade at the store level.
	Delete(ctx context.Context, identifier string) error
}

// EventService defines organizer-facing event operations. Methods taking an
// authHeader expect the raw Authorization header value ("Basic <token>").
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	// CreateEvent assigns a fresh identifier and creator token to event and
	// persists it.
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, identifier string) (*Event, error)
	// UpdateEvent applies a partial update after verifying the creator
	// credential. Returns the full updated event.
	UpdateEvent(ctx context.Context, identifier, authHeader string, upd EventUpdate) (*Event, error)
	// DeleteEvent removes the event and all of its attendees.
	DeleteEvent(ctx context.Context, identifier, authHeader string) error
}
