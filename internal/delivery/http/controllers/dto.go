package controllers

import (
	"fmt"
	"time"

	"notikums/internal/domain"
)

// timeLayout is the only accepted wire format for event times: ISO-8601
// with a numeric UTC offset, exactly 24 characters
// (YYYY-MM-DDTHH:MM:SS±HHMM).
const timeLayout = "2006-01-02T15:04:05-0700"

// Field length limits, matching the stored column widths.
const (
	maxTitleLen       = 128
	maxLocationLen    = 64
	maxCreatorNameLen = 64
	maxDescriptionLen = 256
	maxImageLen       = 256
	maxUserNameLen    = 64
	maxNameLen        = 64
	maxEmailLen       = 64
	maxPhoneLen       = 16
)

// parseEventTime validates and parses a wire-format event time.
func parseEventTime(s string) (time.Time, error) {
	if len(s) != len(timeLayout) {
		return time.Time{}, fmt.Errorf("time must be exactly %d characters (%s)", len(timeLayout), "YYYY-MM-DDTHH:MM:SS+HHMM")
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("time must match %s", "YYYY-MM-DDTHH:MM:SS+HHMM")
	}
	return t, nil
}

// formatEventTime serializes a stored timestamp back to the wire format.
// Times are stored absolute; reads serialize in UTC with a +0000 offset.
func formatEventTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// EventResponse is the public representation of an event. It never carries
// the creator token.
// swagger:model EventResponse
type EventResponse struct {
	Identifier  string  `json:"identifier"`
	Title       string  `json:"title"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	CreatorName *string `json:"creator_name,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// EventCreatedResponse is the create-time representation of an event. This
// is the only read path that discloses the creator token: the client has no
// other way to learn it.
// swagger:model EventCreatedResponse
type EventCreatedResponse struct {
	EventResponse
	CreatorToken string `json:"creator_token"`
}

func newEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		Identifier:  e.Identifier,
		Title:       e.Title,
		Time:        formatEventTime(e.Time),
		Location:    e.Location,
		CreatorName: e.CreatorName,
		Description: e.Description,
		Image:       e.Image,
	}
}

func newEventCreatedResponse(e *domain.Event) EventCreatedResponse {
	return EventCreatedResponse{
		EventResponse: newEventResponse(e),
		CreatorToken:  e.CreatorToken,
	}
}

// AttendeeResponse is the public representation of an attendee. It never
// carries the user token.
// swagger:model AttendeeResponse
type AttendeeResponse struct {
	UserIdentifier string  `json:"user_identifier"`
	UserName       string  `json:"user_name"`
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
}

// AttendeeCreatedResponse is the registration-time representation of an
// attendee, the only read path that discloses the user token.
// swagger:model AttendeeCreatedResponse
type AttendeeCreatedResponse struct {
	AttendeeResponse
	UserToken string `json:"user_token"`
}

func newAttendeeResponse(a *domain.Attendee) AttendeeResponse {
	return AttendeeResponse{
		UserIdentifier: a.UserIdentifier,
		UserName:       a.UserName,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Email:          a.Email,
		Phone:          a.Phone,
	}
}

func newAttendeeCreatedResponse(a *domain.Attendee) AttendeeCreatedResponse {
	return AttendeeCreatedResponse{
		AttendeeResponse: newAttendeeResponse(a),
		UserToken:        a.UserToken,
	}
}
