package services

import (
	"context"
	"errors"
	"fmt"

	"notikums/internal/domain"
)

type attendeeService struct {
	eventRepo    domain.EventRepository
	attendeeRepo domain.AttendeeRepository
	tokens       domain.TokenSource
}

// NewAttendeeService creates an AttendeeService with the given repositories
// and token source.
func NewAttendeeService(
	eventRepo domain.EventRepository,
	attendeeRepo domain.AttendeeRepository,
	tokens domain.TokenSource,
) domain.AttendeeService {
	return &attendeeService{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
		tokens:       tokens,
	}
}

func (s *attendeeService) ListAttendees(ctx context.Context, eventIdentifier, authHeader string) ([]*domain.Attendee, error) {
	event, err := s.eventRepo.GetByIdentifier(ctx, eventIdentifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	// The attendee list is private to the creator; individual attendees
	// cannot read it.
	if !domain.Authorize(authHeader, event.CreatorToken) {
		return nil, domain.ErrUnauthorized
	}

	attendees, err := s.attendeeRepo.ListByEvent(ctx, eventIdentifier)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return attendees, nil
}

func (s *attendeeService) RegisterAttendee(ctx context.Context, attendee *domain.Attendee) error {
	// Anyone may join; no credential is required to register.
	if _, err := s.eventRepo.GetByIdentifier(ctx, attendee.EventIdentifier); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	// Pre-check for a friendly error; the unique constraint on
	// (event_identifier, user_name) remains authoritative under races.
	taken, err := s.attendeeRepo.UserNameTaken(ctx, attendee.EventIdentifier, attendee.UserName)
	if err != nil {
		return fmt.Errorf("check user_name: %w", err)
	}
	if taken {
		return domain.ErrDuplicateUserName
	}

	secret, err := s.tokens.NewSecret()
	if err != nil {
		return fmt.Errorf("generate user token: %w", err)
	}
	attendee.UserToken = secret

	for attempt := 0; attempt < createAttempts; attempt++ {
		identifier, err := s.tokens.NewIdentifier()
		if err != nil {
			return fmt.Errorf("generate user identifier: %w", err)
		}
		attendee.UserIdentifier = identifier

		err = s.attendeeRepo.Create(ctx, attendee)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrDuplicateID) {
			continue
		}
		if errors.Is(err, domain.ErrDuplicateUserName) || errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("create attendee: %w", err)
	}
	return fmt.Errorf("create attendee: %w", domain.ErrDuplicateID)
}

func (s *attendeeService) GetAttendee(ctx context.Context, eventIdentifier, userIdentifier, authHeader string) (*domain.Attendee, error) {
	event, attendee, err := s.resolve(ctx, eventIdentifier, userIdentifier)
	if err != nil {
		return nil, err
	}
	if !domain.AuthorizeAny(authHeader, event.CreatorToken, attendee.UserToken) {
		return nil, domain.ErrUnauthorized
	}
	return attendee, nil
}

func (s *attendeeService) UpdateAttendee(ctx context.Context, eventIdentifier, userIdentifier, authHeader string, upd domain.AttendeeUpdate) (*domain.Attendee, error) {
	event, attendee, err := s.resolve(ctx, eventIdentifier, userIdentifier)
	if err != nil {
		return nil, err
	}
	if !domain.AuthorizeAny(authHeader, event.CreatorToken, attendee.UserToken) {
		return nil, domain.ErrUnauthorized
	}

	// Renaming must stay unique within the event; keeping the current name
	// is allowed.
	if upd.UserName != nil && *upd.UserName != attendee.UserName {
		taken, err := s.attendeeRepo.UserNameTaken(ctx, eventIdentifier, *upd.UserName)
		if err != nil {
			return nil, fmt.Errorf("check user_name: %w", err)
		}
		if taken {
			return nil, domain.ErrDuplicateUserName
		}
	}

	updated, err := s.attendeeRepo.Update(ctx, eventIdentifier, userIdentifier, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicateUserName) || errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("update attendee: %w", err)
	}
	return updated, nil
}

func (s *attendeeService) DeleteAttendee(ctx context.Context, eventIdentifier, userIdentifier, authHeader string) error {
	event, attendee, err := s.resolve(ctx, eventIdentifier, userIdentifier)
	if err != nil {
		return err
	}
	if !domain.AuthorizeAny(authHeader, event.CreatorToken, attendee.UserToken) {
		return domain.ErrUnauthorized
	}

	if err := s.attendeeRepo.Delete(ctx, eventIdentifier, userIdentifier); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete attendee: %w", err)
	}
	return nil
}

// resolve loads the event and the attendee, in that order, so a missing
// parent or target reads as not found before any credential is examined.
func (s *attendeeService) resolve(ctx context.Context, eventIdentifier, userIdentifier string) (*domain.Event, *domain.Attendee, error) {
	event, err := s.eventRepo.GetByIdentifier(ctx, eventIdentifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get event: %w", err)
	}
	attendee, err := s.attendeeRepo.GetByIdentifier(ctx, eventIdentifier, userIdentifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get attendee: %w", err)
	}
	return event, attendee, nil
}
