package domain

import "context"

// Attendee represents a participation record belonging to exactly one
// event. UserIdentifier is public; UserToken is the secret credential
// proving control over the record and is disclosed only at registration.
type Attendee struct {
	UserIdentifier  string  `json:"user_identifier"`
	UserToken       string  `json:"-"`
	EventIdentifier string  `json:"-"`
	UserName        string  `json:"user_name"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
}

// NewAttendee returns a new Attendee for the given event. UserIdentifier
// and UserToken are assigned by the service on registration.
func NewAttendee(eventIdentifier, userName string) *Attendee {
	return &Attendee{
		EventIdentifier: eventIdentifier,
		UserName:        userName,
	}
}

// AttendeeUpdate carries a partial update: nil fields are left untouched.
type AttendeeUpdate struct {
	UserName  *string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// Empty reports whether the update changes nothing.
func (u AttendeeUpdate) Empty() bool {
	return u.UserName == nil && u.FirstName == nil && u.LastName == nil &&
		u.Email == nil && u.Phone == nil
}

// AttendeeRepository defines storage operations for attendees. All lookups
// are scoped to the parent event so an attendee identifier never resolves
// under a different event.
type AttendeeRepository interface {
	Create(ctx context.Context, attendee *Attendee) error
	GetByIdentifier(ctx context.Context, eventIdentifier, userIdentifier string) (*Attendee, error)
	ListByEvent(ctx context.Context, eventIdentifier string) ([]*Attendee, error)
	Update(ctx context.Context, eventIdentifier, userIdentifier string, upd AttendeeUpdate) (*Attendee, error)
	Delete(ctx context.Context, eventIdentifier, userIdentifier string) error
	// UserNameTaken reports whether userName is already used within the event.
	UserNameTaken(ctx context.Context, eventIdentifier, userName string) (bool, error)
}

// AttendeeService defines attendee operations. Item operations accept the
// event creator's token or the attendee's own token; the attendee list is
// private to the creator. Registration requires no credential.
type AttendeeService interface {
	// ListAttendees returns the event's attendees to the creator only.
	ListAttendees(ctx context.Context, eventIdentifier, authHeader string) ([]*Attendee, error)
	// RegisterAttendee assigns a fresh identifier and user token to attendee
	// and persists it. Fails with ErrDuplicateUserName when the name is
	// already taken within the event.
	RegisterAttendee(ctx context.Context, attendee *Attendee) error
	GetAttendee(ctx context.Context, eventIdentifier, userIdentifier, authHeader string) (*Attendee, error)
	UpdateAttendee(ctx context.Context, eventIdentifier, userIdentifier, authHeader string, upd AttendeeUpdate) (*Attendee, error)
	DeleteAttendee(ctx context.Context, eventIdentifier, userIdentifier, authHeader string) error
}
