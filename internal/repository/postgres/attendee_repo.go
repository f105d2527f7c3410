package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"notikums/internal/domain"
)

type attendeeRepository struct {
	DB *sql.DB
}

func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{
		DB: db,
	}
}

const attendeeColumns = "user_identifier, event_identifier, user_token, user_name, first_name, last_name, email, phone"

func (r *attendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	query := `
		INSERT INTO attendees (user_identifier, event_identifier, user_token, user_name, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		a.UserIdentifier, a.EventIdentifier, a.UserToken, a.UserName,
		a.FirstName, a.LastName, a.Email, a.Phone,
	)
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (r *attendeeRepository) GetByIdentifier(ctx context.Context, eventIdentifier, userIdentifier string) (*domain.Attendee, error) {
	query := `
		SELECT ` + attendeeColumns + `
		FROM attendees
		WHERE event_identifier = $1 AND user_identifier = $2
	`
	a, err := scanAttendee(r.DB.QueryRowContext(ctx, query, eventIdentifier, userIdentifier))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) ListByEvent(ctx context.Context, eventIdentifier string) ([]*domain.Attendee, error) {
	query := `
		SELECT ` + attendeeColumns + `
		FROM attendees
		WHERE event_identifier = $1
		ORDER BY user_name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventIdentifier)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	attendees := make([]*domain.Attendee, 0)
	for rows.Next() {
		a, err := scanAttendee(rows)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

func (r *attendeeRepository) Update(ctx context.Context, eventIdentifier, userIdentifier string, upd domain.AttendeeUpdate) (*domain.Attendee, error) {
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	if upd.UserName != nil {
		setClauses = append(setClauses, fmt.Sprintf("user_name = $%d", n))
		args = append(args, *upd.UserName)
		n++
	}
	if upd.FirstName != nil {
		setClauses = append(setClauses, fmt.Sprintf("first_name = $%d", n))
		args = append(args, *upd.FirstName)
		n++
	}
	if upd.LastName != nil {
		setClauses = append(setClauses, fmt.Sprintf("last_name = $%d", n))
		args = append(args, *upd.LastName)
		n++
	}
	if upd.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", n))
		args = append(args, *upd.Email)
		n++
	}
	if upd.Phone != nil {
		setClauses = append(setClauses, fmt.Sprintf("phone = $%d", n))
		args = append(args, *upd.Phone)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByIdentifier(ctx, eventIdentifier, userIdentifier)
	}
	args = append(args, eventIdentifier, userIdentifier)
	query := fmt.Sprintf(`
		UPDATE attendees SET %s
		WHERE event_identifier = $%d AND user_identifier = $%d
		RETURNING `+attendeeColumns+`
	`, strings.Join(setClauses, ", "), n, n+1)
	a, err := scanAttendee(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError(err)
	}
	return a, nil
}

func (r *attendeeRepository) Delete(ctx context.Context, eventIdentifier, userIdentifier string) error {
	query := `DELETE FROM attendees WHERE event_identifier = $1 AND user_identifier = $2`
	result, err := r.DB.ExecContext(ctx, query, eventIdentifier, userIdentifier)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *attendeeRepository) UserNameTaken(ctx context.Context, eventIdentifier, userName string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM attendees WHERE event_identifier = $1 AND user_name = $2)`
	var taken bool
	if err := r.DB.QueryRowContext(ctx, query, eventIdentifier, userName).Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}

func scanAttendee(row rowScanner) (*domain.Attendee, error) {
	a := &domain.Attendee{}
	var firstNull, lastNull, emailNull, phoneNull sql.NullString
	err := row.Scan(
		&a.UserIdentifier, &a.EventIdentifier, &a.UserToken, &a.UserName,
		&firstNull, &lastNull, &emailNull, &phoneNull,
	)
	if err != nil {
		return nil, err
	}
	if firstNull.Valid {
		a.FirstName = &firstNull.String
	}
	if lastNull.Valid {
		a.LastName = &lastNull.String
	}
	if emailNull.Valid {
		a.Email = &emailNull.String
	}
	if phoneNull.Valid {
		a.Phone = &phoneNull.String
	}
	return a, nil
}
