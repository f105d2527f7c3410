package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"notikums/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokens is a deterministic TokenSource. Identifiers can be preloaded
// to force collisions; otherwise a sequence is generated.
type fakeTokens struct {
	ids    []string // preloaded identifiers, consumed first
	idSeq  int
	secSeq int
	idErr  error
	secErr error
}

func (f *fakeTokens) NewIdentifier() (string, error) {
	if f.idErr != nil {
		return "", f.idErr
	}
	if len(f.ids) > 0 {
		id := f.ids[0]
		f.ids = f.ids[1:]
		return id, nil
	}
	f.idSeq++
	return fmt.Sprintf("ID%06d", f.idSeq), nil
}

func (f *fakeTokens) NewSecret() (string, error) {
	if f.secErr != nil {
		return "", f.secErr
	}
	f.secSeq++
	return fmt.Sprintf("%064d", f.secSeq), nil
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	createErr error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byID[e.Identifier]; exists {
		return domain.ErrDuplicateID
	}
	cp := *e
	f.byID[e.Identifier] = &cp
	return nil
}

func (f *fakeEventRepo) GetByIdentifier(ctx context.Context, identifier string) (*domain.Event, error) {
	if e, ok := f.byID[identifier]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, identifier string, upd domain.EventUpdate) (*domain.Event, error) {
	e, ok := f.byID[identifier]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.Time != nil {
		e.Time = *upd.Time
	}
	if upd.CreatorName != nil {
		e.CreatorName = upd.CreatorName
	}
	if upd.Description != nil {
		e.Description = upd.Description
	}
	if upd.Image != nil {
		e.Image = upd.Image
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, identifier string) error {
	if _, ok := f.byID[identifier]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, identifier)
	return nil
}

func strPtr(s string) *string { return &s }

func seedEvent(t *testing.T, repo *fakeEventRepo, tokens *fakeTokens) *domain.Event {
	t.Helper()
	svc := NewEventService(repo, tokens)
	event := domain.NewEvent("eventti", "Tellus", time.Date(2020, 2, 1, 22, 0, 0, 0, time.UTC))
	require.NoError(t, svc.CreateEvent(context.Background(), event))
	return event
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns identifier and creator token", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, &fakeTokens{})

		event := domain.NewEvent("eventti", "Tellus", time.Now())
		require.NoError(t, svc.CreateEvent(ctx, event))

		assert.Len(t, event.Identifier, 8)
		assert.Len(t, event.CreatorToken, 64)

		stored, err := repo.GetByIdentifier(ctx, event.Identifier)
		require.NoError(t, err)
		assert.Equal(t, "eventti", stored.Title)
	})

	t.Run("distinct identifiers per event", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, &fakeTokens{})

		first := domain.NewEvent("one", "here", time.Now())
		second := domain.NewEvent("two", "there", time.Now())
		require.NoError(t, svc.CreateEvent(ctx, first))
		require.NoError(t, svc.CreateEvent(ctx, second))
		assert.NotEqual(t, first.Identifier, second.Identifier)
		assert.NotEqual(t, first.CreatorToken, second.CreatorToken)
	})

	t.Run("retries on identifier collision", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.byID["TAKEN000"] = &domain.Event{Identifier: "TAKEN000"}
		tokens := &fakeTokens{ids: []string{"TAKEN000", "FRESH000"}}
		svc := NewEventService(repo, tokens)

		event := domain.NewEvent("eventti", "Tellus", time.Now())
		require.NoError(t, svc.CreateEvent(ctx, event))
		assert.Equal(t, "FRESH000", event.Identifier)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.byID["TAKEN000"] = &domain.Event{Identifier: "TAKEN000"}
		tokens := &fakeTokens{ids: []string{"TAKEN000", "TAKEN000", "TAKEN000"}}
		svc := NewEventService(repo, tokens)

		err := svc.CreateEvent(ctx, domain.NewEvent("eventti", "Tellus", time.Now()))
		require.ErrorIs(t, err, domain.ErrDuplicateID)
	})

	t.Run("repo failure", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.createErr = errors.New("boom")
		svc := NewEventService(repo, &fakeTokens{})

		err := svc.CreateEvent(ctx, domain.NewEvent("eventti", "Tellus", time.Now()))
		require.Error(t, err)
	})
}

func TestEventService_GetEvent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	tokens := &fakeTokens{}
	event := seedEvent(t, repo, tokens)
	svc := NewEventService(repo, tokens)

	got, err := svc.GetEvent(ctx, event.Identifier)
	require.NoError(t, err)
	assert.Equal(t, event.Title, got.Title)
	assert.Equal(t, event.Time, got.Time)
	assert.Equal(t, event.Location, got.Location)

	_, err = svc.GetEvent(ctx, "MISSING1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		repo := newFakeEventRepo()
		tokens := &fakeTokens{}
		event := seedEvent(t, repo, tokens)
		svc := NewEventService(repo, tokens)

		upd := domain.EventUpdate{Title: strPtr("X")}
		got, err := svc.UpdateEvent(ctx, event.Identifier, "Basic "+event.CreatorToken, upd)
		require.NoError(t, err)
		assert.Equal(t, "X", got.Title)
		assert.Equal(t, event.Location, got.Location)
		assert.Equal(t, event.Time, got.Time)

		// Applying the same partial update again yields the same state.
		again, err := svc.UpdateEvent(ctx, event.Identifier, "Basic "+event.CreatorToken, upd)
		require.NoError(t, err)
		assert.Equal(t, got, again)
	})

	t.Run("wrong credential", func(t *testing.T) {
		repo := newFakeEventRepo()
		tokens := &fakeTokens{}
		event := seedEvent(t, repo, tokens)
		svc := NewEventService(repo, tokens)

		_, err := svc.UpdateEvent(ctx, event.Identifier, "Basic WRONG", domain.EventUpdate{Title: strPtr("X")})
		require.ErrorIs(t, err, domain.ErrUnauthorized)

		stored, err := repo.GetByIdentifier(ctx, event.Identifier)
		require.NoError(t, err)
		assert.Equal(t, "eventti", stored.Title)
	})

	t.Run("missing event wins over bad credential", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, &fakeTokens{})

		_, err := svc.UpdateEvent(ctx, "MISSING1", "Basic WRONG", domain.EventUpdate{Title: strPtr("X")})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := newFakeEventRepo()
		tokens := &fakeTokens{}
		event := seedEvent(t, repo, tokens)
		svc := NewEventService(repo, tokens)

		require.NoError(t, svc.DeleteEvent(ctx, event.Identifier, "Basic "+event.CreatorToken))
		_, err := svc.GetEvent(ctx, event.Identifier)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("wrong credential", func(t *testing.T) {
		repo := newFakeEventRepo()
		tokens := &fakeTokens{}
		event := seedEvent(t, repo, tokens)
		svc := NewEventService(repo, tokens)

		require.ErrorIs(t, svc.DeleteEvent(ctx, event.Identifier, "Basic WRONG"), domain.ErrUnauthorized)
	})

	t.Run("missing event wins over bad credential", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, &fakeTokens{})

		require.ErrorIs(t, svc.DeleteEvent(ctx, "MISSING1", "Basic WRONG"), domain.ErrNotFound)
	})
}
