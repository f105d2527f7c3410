package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"notikums/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = "identifier, creator_token, title, location, time, creator_name, description, image"

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (identifier, creator_token, title, location, time, creator_name, description, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.Identifier, e.CreatorToken, e.Title, e.Location, e.Time,
		e.CreatorName, e.Description, e.Image,
	)
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (r *eventRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE identifier = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY time ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, identifier string, upd domain.EventUpdate) (*domain.Event, error) {
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	if upd.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, *upd.Title)
		n++
	}
	if upd.Location != nil {
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", n))
		args = append(args, *upd.Location)
		n++
	}
	if upd.Time != nil {
		setClauses = append(setClauses, fmt.Sprintf("time = $%d", n))
		args = append(args, *upd.Time)
		n++
	}
	if upd.CreatorName != nil {
		setClauses = append(setClauses, fmt.Sprintf("creator_name = $%d", n))
		args = append(args, *upd.CreatorName)
		n++
	}
	if upd.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *upd.Description)
		n++
	}
	if upd.Image != nil {
		setClauses = append(setClauses, fmt.Sprintf("image = $%d", n))
		args = append(args, *upd.Image)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByIdentifier(ctx, identifier)
	}
	args = append(args, identifier)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE identifier = $%d
		RETURNING `+eventColumns+`
	`, strings.Join(setClauses, ", "), n)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError(err)
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, identifier string) error {
	query := `DELETE FROM events WHERE identifier = $1`
	result, err := r.DB.ExecContext(ctx, query, identifier)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var creatorNameNull, descNull, imageNull sql.NullString
	err := row.Scan(
		&e.Identifier, &e.CreatorToken, &e.Title, &e.Location, &e.Time,
		&creatorNameNull, &descNull, &imageNull,
	)
	if err != nil {
		return nil, err
	}
	if creatorNameNull.Valid {
		e.CreatorName = &creatorNameNull.String
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if imageNull.Valid {
		e.Image = &imageNull.String
	}
	return e, nil
}
