package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/pollkeeper/internal/model"
)

// uniqueViolation is the SQLSTATE reported for a unique constraint conflict.
const uniqueViolation = "23505"

var _ model.PollStore = (*PollRepository)(nil)

type PollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *Connection) *PollRepository {
	return &PollRepository{
		db: db.DB,
	}
}

func (r *PollRepository) Create(ctx context.Context, poll model.Poll) (int64, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	const query = `
		INSERT INTO polls (fname, lname, age, city, interests, login, password)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err = conn.QueryRowContext(ctx, query,
		poll.FirstName, poll.LastName, poll.Age, poll.City, poll.Interests,
		poll.Login, poll.PasswordDigest,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, model.ErrDuplicateLogin
		}
		return 0, fmt.Errorf("failed to create poll: %w", err)
	}

	return id, nil
}

func (r *PollRepository) List(ctx context.Context, offset, limit int) ([]model.Poll, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	const query = `
		SELECT id, fname, lname, age, city, interests
		FROM polls
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := conn.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	defer rows.Close()

	polls := make([]model.Poll, 0)
	for rows.Next() {
		poll, err := scanPoll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}

	return polls, nil
}

func (r *PollRepository) GetByID(ctx context.Context, id int64) (model.Poll, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return model.Poll{}, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	const query = `
		SELECT id, fname, lname, age, city, interests
		FROM polls
		WHERE id = $1`

	poll, err := scanPoll(conn.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Poll{}, model.ErrNotFound
		}
		return model.Poll{}, fmt.Errorf("failed to get poll by id: %w", err)
	}

	return poll, nil
}

func (r *PollRepository) GetCredentials(ctx context.Context, login string) (model.Credentials, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return model.Credentials{}, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	const query = `SELECT login, password FROM polls WHERE login = $1`

	var creds model.Credentials
	err = conn.QueryRowContext(ctx, query, login).Scan(&creds.Login, &creds.PasswordDigest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Credentials{}, model.ErrNotFound
		}
		return model.Credentials{}, fmt.Errorf("failed to get credentials by login: %w", err)
	}

	return creds, nil
}

func (r *PollRepository) Clear(ctx context.Context) (int64, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, `DELETE FROM polls`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear polls: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

func (r *PollRepository) Count(ctx context.Context) (int64, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	var n int64
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM polls`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count polls: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPoll(s scanner) (model.Poll, error) {
	var (
		poll      model.Poll
		interests sql.NullString
	)
	if err := s.Scan(&poll.ID, &poll.FirstName, &poll.LastName, &poll.Age, &poll.City, &interests); err != nil {
		return model.Poll{}, err
	}
	if interests.Valid {
		poll.Interests = &interests.String
	}
	return poll, nil
}
