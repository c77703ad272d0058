package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"talktrack/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, name, country, city, remote, date_start, date_end, call_for_content_url,
		call_for_content_last_date, login_tool, travel, hotels, travel_handled, hotel_handled,
		mvp_submission, notes`

func scanEvent(row scanner) (*domain.Event, error) {
	e := &domain.Event{}
	var travel, hotels []byte
	err := row.Scan(
		&e.ID, &e.Name, &e.Country, &e.City, &e.Remote, &e.DateStart, &e.DateEnd, &e.CallForContentURL,
		&e.CallForContentLastDate, &e.LoginTool, &travel, &hotels, &e.TravelHandled, &e.HotelHandled,
		&e.MVPSubmission, &e.Notes,
	)
	if err != nil {
		return nil, err
	}
	e.Travel = []domain.TravelBooking{}
	if len(travel) > 0 {
		if err := json.Unmarshal(travel, &e.Travel); err != nil {
			return nil, fmt.Errorf("decode travel: %w", err)
		}
	}
	e.Hotels = []domain.HotelBooking{}
	if len(hotels) > 0 {
		if err := json.Unmarshal(hotels, &e.Hotels); err != nil {
			return nil, fmt.Errorf("decode hotels: %w", err)
		}
	}
	return e, nil
}

func bookingsJSON(e *domain.Event) (travel, hotels []byte, err error) {
	t := e.Travel
	if t == nil {
		t = []domain.TravelBooking{}
	}
	h := e.Hotels
	if h == nil {
		h = []domain.HotelBooking{}
	}
	if travel, err = json.Marshal(t); err != nil {
		return nil, nil, fmt.Errorf("encode travel: %w", err)
	}
	if hotels, err = json.Marshal(h); err != nil {
		return nil, nil, fmt.Errorf("encode hotels: %w", err)
	}
	return travel, hotels, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	travel, hotels, err := bookingsJSON(e)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (id, name, country, city, remote, date_start, date_end, call_for_content_url,
			call_for_content_last_date, login_tool, travel, hotels, travel_handled, hotel_handled,
			mvp_submission, notes)
		VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.ID, e.Name, e.Country, e.City, e.Remote, e.DateStart, e.DateEnd, e.CallForContentURL,
		e.CallForContentLastDate, e.LoginTool, travel, hotels, e.TravelHandled, e.HotelHandled,
		e.MVPSubmission, e.Notes,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return listEvents(ctx, r.DB)
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listEvents(ctx context.Context, q queryer) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at, id`
	rows, err := q.QueryContext(ctx, query)
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

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	travel, hotels, err := bookingsJSON(e)
	if err != nil {
		return err
	}
	query := `
		UPDATE events SET name = $2, country = $3, city = $4, remote = $5, date_start = $6, date_end = $7,
			call_for_content_url = $8, call_for_content_last_date = $9, login_tool = $10, travel = $11,
			hotels = $12, travel_handled = $13, hotel_handled = $14, mvp_submission = $15, notes = $16
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Name, e.Country, e.City, e.Remote, e.DateStart, e.DateEnd,
		e.CallForContentURL, e.CallForContentLastDate, e.LoginTool, travel,
		hotels, e.TravelHandled, e.HotelHandled, e.MVPSubmission, e.Notes,
	)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

// Delete removes the event; its submissions go with it through ON DELETE CASCADE.
func (r *eventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
