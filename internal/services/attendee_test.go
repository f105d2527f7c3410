package services

import (
	"context"
	"testing"

	"notikums/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendeeRepo is an in-memory AttendeeRepository keyed by event and
// attendee identifier.
type fakeAttendeeRepo struct {
	byKey     map[string]*domain.Attendee // eventIdentifier + "/" + userIdentifier
	createErr error
}

func newFakeAttendeeRepo() *fakeAttendeeRepo {
	return &fakeAttendeeRepo{byKey: make(map[string]*domain.Attendee)}
}

func attendeeKey(eventIdentifier, userIdentifier string) string {
	return eventIdentifier + "/" + userIdentifier
}

func (f *fakeAttendeeRepo) Create(ctx context.Context, a *domain.Attendee) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byKey {
		if existing.UserIdentifier == a.UserIdentifier {
			return domain.ErrDuplicateID
		}
		if existing.EventIdentifier == a.EventIdentifier && existing.UserName == a.UserName {
			return domain.ErrDuplicateUserName
		}
	}
	cp := *a
	f.byKey[attendeeKey(a.EventIdentifier, a.UserIdentifier)] = &cp
	return nil
}

func (f *fakeAttendeeRepo) GetByIdentifier(ctx context.Context, eventIdentifier, userIdentifier string) (*domain.Attendee, error) {
	if a, ok := f.byKey[attendeeKey(eventIdentifier, userIdentifier)]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAttendeeRepo) ListByEvent(ctx context.Context, eventIdentifier string) ([]*domain.Attendee, error) {
	out := make([]*domain.Attendee, 0)
	for _, a := range f.byKey {
		if a.EventIdentifier == eventIdentifier {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeAttendeeRepo) Update(ctx context.Context, eventIdentifier, userIdentifier string, upd domain.AttendeeUpdate) (*domain.Attendee, error) {
	a, ok := f.byKey[attendeeKey(eventIdentifier, userIdentifier)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.UserName != nil {
		for _, other := range f.byKey {
			if other.EventIdentifier == eventIdentifier && other.UserIdentifier != userIdentifier && other.UserName == *upd.UserName {
				return nil, domain.ErrDuplicateUserName
			}
		}
		a.UserName = *upd.UserName
	}
	if upd.FirstName != nil {
		a.FirstName = upd.FirstName
	}
	if upd.LastName != nil {
		a.LastName = upd.LastName
	}
	if upd.Email != nil {
		a.Email = upd.Email
	}
	if upd.Phone != nil {
		a.Phone = upd.Phone
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttendeeRepo) Delete(ctx context.Context, eventIdentifier, userIdentifier string) error {
	key := attendeeKey(eventIdentifier, userIdentifier)
	if _, ok := f.byKey[key]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byKey, key)
	return nil
}

func (f *fakeAttendeeRepo) UserNameTaken(ctx context.Context, eventIdentifier, userName string) (bool, error) {
	for _, a := range f.byKey {
		if a.EventIdentifier == eventIdentifier && a.UserName == userName {
			return true, nil
		}
	}
	return false, nil
}

type attendeeFixture struct {
	svc      domain.AttendeeService
	event    *domain.Event
	attendee *domain.Attendee
}

func newAttendeeFixture(t *testing.T) *attendeeFixture {
	t.Helper()
	eventRepo := newFakeEventRepo()
	attendeeRepo := newFakeAttendeeRepo()
	tokens := &fakeTokens{}
	event := seedEvent(t, eventRepo, tokens)

	svc := NewAttendeeService(eventRepo, attendeeRepo, tokens)
	attendee := domain.NewAttendee(event.Identifier, "tester")
	require.NoError(t, svc.RegisterAttendee(context.Background(), attendee))

	return &attendeeFixture{svc: svc, event: event, attendee: attendee}
}

func TestAttendeeService_RegisterAttendee(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns identifier and user token", func(t *testing.T) {
		fx := newAttendeeFixture(t)
		assert.Len(t, fx.attendee.UserIdentifier, 8)
		assert.Len(t, fx.attendee.UserToken, 64)
		assert.NotEqual(t, fx.event.CreatorToken, fx.attendee.UserToken)
	})

	t.Run("missing event", func(t *testing.T) {
		svc := NewAttendeeService(newFakeEventRepo(), newFakeAttendeeRepo(), &fakeTokens{})
		err := svc.RegisterAttendee(ctx, domain.NewAttendee("MISSING1", "tester"))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate user_name within event", func(t *testing.T) {
		fx := newAttendeeFixture(t)
		err := fx.svc.RegisterAttendee(ctx, domain.NewAttendee(fx.event.Identifier, "tester"))
		require.ErrorIs(t, err, domain.ErrDuplicateUserName)
	})

	t.Run("same user_name allowed in a different event", func(t *testing.T) {
		eventRepo := newFakeEventRepo()
		attendeeRepo := newFakeAttendeeRepo()
		tokens := &fakeTokens{}
		first := seedEvent(t, eventRepo, tokens)
		second := seedEvent(t, eventRepo, tokens)
		svc := NewAttendeeService(eventRepo, attendeeRepo, tokens)

		require.NoError(t, svc.RegisterAttendee(ctx, domain.NewAttendee(first.Identifier, "alice")))
		require.NoError(t, svc.RegisterAttendee(ctx, domain.NewAttendee(second.Identifier, "alice")))
	})
}

func TestAttendeeService_ListAttendees(t *testing.T) {
	ctx := context.Background()
	fx := newAttendeeFixture(t)

	t.Run("creator can list", func(t *testing.T) {
		got, err := fx.svc.ListAttendees(ctx, fx.event.Identifier, "Basic "+fx.event.CreatorToken)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "tester", got[0].UserName)
	})

	t.Run("attendee's own token is not enough", func(t *testing.T) {
		_, err := fx.svc.ListAttendees(ctx, fx.event.Identifier, "Basic "+fx.attendee.UserToken)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := fx.svc.ListAttendees(ctx, fx.event.Identifier, "")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("missing event wins over bad credential", func(t *testing.T) {
		_, err := fx.svc.ListAttendees(ctx, "MISSING1", "Basic WRONG")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAttendeeService_GetAttendee(t *testing.T) {
	ctx := context.Background()
	fx := newAttendeeFixture(t)

	t.Run("creator token", func(t *testing.T) {
		got, err := fx.svc.GetAttendee(ctx, fx.event.Identifier, fx.attendee.UserIdentifier, "Basic "+fx.event.CreatorToken)
		require.NoError(t, err)
		assert.Equal(t, "tester", got.UserName)
	})

	t.Run("attendee's own token", func(t *testing.T) {
		got, err := fx.svc.GetAttendee(ctx, fx.event.Identifier, fx.attendee.UserIdentifier, "Basic "+fx.attendee.UserToken)
		require.NoError(t, err)
		assert.Equal(t, "tester", got.UserName)
	})

	t.Run("third-party token", func(t *testing.T) {
		_, err := fx.svc.GetAttendee(ctx, fx.event.Identifier, fx.attendee.UserIdentifier, "Basic STRANGER")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("missing attendee wins over bad credential", func(t *testing.T) {
		_, err := fx.svc.GetAttendee(ctx, fx.event.Identifier, "MISSING1", "Basic WRONG")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAttendeeService_UpdateAttendee(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update with own token", func(t *testing.T) {
		fx := newAttendeeFixture(t)
		got, err := fx.svc.UpdateAttendee(ctx, fx.event.Identifier, fx.attendee.UserIdentifier,
			"Basic "+fx.attendee.UserToken, domain.AttendeeUpdate{FirstName: strPtr("Test")})
		require.NoError(t, err)
		assert.Equal(t, strPtr("Test"), got.FirstName)
		assert.Equal(t, "tester", got.UserName)
		assert.Equal(t, fx.attendee.UserToken, got.UserToken)
	})

	t.Run("rename conflict", func(t *testing.T) {
		fx := newAttendeeFixture(t)
		other := domain.NewAttendee(fx.event.Identifier, "other")
		require.NoError(t, fx.svc.RegisterAttendee(ctx, other))

		_, err := fx.svc.UpdateAttendee(ctx, fx.event.Identifier, other.UserIdentifier,
			"Basic "+other.UserToken, domain.AttendeeUpdate{UserName: strPtr("tester")})
		require.ErrorIs(t, err, domain.ErrDuplicateUserName)
	})

	t.Run("keeping the current name is allowed", func(t *testing.T) {
		fx := newAttendeeFixture(t)
		got, err := fx.svc.UpdateAttendee(ctx, fx.event.Identifier, fx.attendee.UserIdentifier,
			"Basic "+fx.attendee.UserToken, domain.AttendeeUpdate{UserName: strPtr("tester"), Phone: strPtr("0441234567")})
		require.NoError(t, err)
		assert.Equal(t, "tester", got.UserName)
		assert.Equal(t, strPtr("0441234567"), got.Phone)
	})

	t.Run("creator token may update", func(t *testing.T) {
		fx := newAttendeeFixture(t)
		_, err := fx.svc.UpdateAttendee(ctx, fx.event.Identifier, fx.attendee.UserIdentifier,
			"Basic "+fx.event.CreatorToken, domain.AttendeeUpdate{LastName: strPtr("User")})
		require.NoError(t, err)
	})

	t.Run("third party may not", func(t *testing.T) {
		fx := newAttendeeFixture(t)
		_, err := fx.svc.UpdateAttendee(ctx, fx.event.Identifier, fx.attendee.UserIdentifier,
			"Basic STRANGER", domain.AttendeeUpdate{LastName: strPtr("User")})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestAttendeeService_DeleteAttendee(t *testing.T) {
	ctx := context.Background()

	t.Run("own token", func(t *testing.T) {
		fx := newAttendeeFixture(t)
		require.NoError(t, fx.svc.DeleteAttendee(ctx, fx.event.Identifier, fx.attendee.UserIdentifier, "Basic "+fx.attendee.UserToken))
		_, err := fx.svc.GetAttendee(ctx, fx.event.Identifier, fx.attendee.UserIdentifier, "Basic "+fx.event.CreatorToken)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("creator token", func(t *testing.T) {
		fx := newAttendeeFixture(t)
		require.NoError(t, fx.svc.DeleteAttendee(ctx, fx.event.Identifier, fx.attendee.UserIdentifier, "Basic "+fx.event.CreatorToken))
	})

	t.Run("third party", func(t *testing.T) {
		fx := newAttendeeFixture(t)
		require.ErrorIs(t, fx.svc.DeleteAttendee(ctx, fx.event.Identifier, fx.attendee.UserIdentifier, "Basic STRANGER"), domain.ErrUnauthorized)
	})

	t.Run("missing attendee wins over bad credential", func(t *testing.T) {
		fx := newAttendeeFixture(t)
		require.ErrorIs(t, fx.svc.DeleteAttendee(ctx, fx.event.Identifier, "MISSING1", "Basic WRONG"), domain.ErrNotFound)
	})
}
