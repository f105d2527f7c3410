package services

import (
	"context"
	"errors"
	"fmt"

	"notikums/internal/domain"
)

// createAttempts bounds identifier regeneration when an insert collides
// with an existing identifier. Collisions are negligible at 36^8 but the
// store rejects duplicates, so we retry with a fresh token.
const createAttempts = 3

type eventService struct {
	eventRepo domain.EventRepository
	tokens    domain.TokenSource
}

// NewEventService creates an EventService with the given repository and
// token source.
func NewEventService(eventRepo domain.EventRepository, tokens domain.TokenSource) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		tokens:    tokens,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	secret, err := s.tokens.NewSecret()
	if err != nil {
		return fmt.Errorf("generate creator token: %w", err)
	}
	event.CreatorToken = secret

	for attempt := 0; attempt < createAttempts; attempt++ {
		identifier, err := s.tokens.NewIdentifier()
		if err != nil {
			return fmt.Errorf("generate identifier: %w", err)
		}
		event.Identifier = identifier

		err = s.eventRepo.Create(ctx, event)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrDuplicateID) {
			continue
		}
		return fmt.Errorf("create event: %w", err)
	}
	return fmt.Errorf("create event: %w", domain.ErrDuplicateID)
}

func (s *eventService) GetEvent(ctx context.Context, identifier string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, identifier, authHeader string, upd domain.EventUpdate) (*domain.Event, error) {
	// Existence is checked before the credential so a missing event reads
	// as 404 even under a bad credential.
	event, err := s.eventRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !domain.Authorize(authHeader, event.CreatorToken) {
		return nil, domain.ErrUnauthorized
	}

	updated, err := s.eventRepo.Update(ctx, identifier, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, identifier, authHeader string) error {
	event, err := s.eventRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if !domain.Authorize(authHeader, event.CreatorToken) {
		return domain.ErrUnauthorized
	}

	// Attendee rows go with the event via the store-level cascade.
	if err := s.eventRepo.Delete(ctx, identifier); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
