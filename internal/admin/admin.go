// Package admin implements the maintenance operations behind pollctl:
// clearing the polls table (optionally after a backup) and filling it
// with generated data.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/dtroode/pollkeeper/internal/logger"
	"github.com/dtroode/pollkeeper/internal/model"
	"github.com/dtroode/pollkeeper/internal/password"
)

const (
	// MaxPopulateCount caps a single populate run.
	MaxPopulateCount = 1_000_000

	// PopulatePassword is the plaintext password of every generated poll.
	PopulatePassword = "password"

	backupPageSize    = 1000
	interestsMaxRunes = 256
	hobbiesPerPoll    = 3
)

// ErrCountOutOfRange is returned when populate is asked for too few or too many rows.
var ErrCountOutOfRange = fmt.Errorf("count must be between 1 and %d", MaxPopulateCount)

// Admin runs maintenance operations against the poll store.
type Admin struct {
	pollStore model.PollStore
	storage   model.Storage
	logger    *logger.Logger
	now       func() time.Time
}

// New creates an Admin. storage may be nil when backups are not needed.
func New(pollStore model.PollStore, storage model.Storage, logger *logger.Logger) *Admin {
	return &Admin{
		pollStore: pollStore,
		storage:   storage,
		logger:    logger,
		now:       time.Now,
	}
}

// ClearResult describes a completed Clear.
type ClearResult struct {
	Deleted   int64
	BackupKey string
}

// Clear deletes every poll. With backup set, the public projection of all
// polls is uploaded as a JSON array first and nothing is deleted if the
// upload fails.
func (a *Admin) Clear(ctx context.Context, backup bool) (ClearResult, error) {
	var result ClearResult

	if backup {
		if a.storage == nil {
			return result, errors.New("backup storage is not configured")
		}

		key, err := a.backup(ctx)
		if err != nil {
			return result, err
		}
		result.BackupKey = key
	}

	deleted, err := a.pollStore.Clear(ctx)
	if err != nil {
		a.logger.Error("Admin: failed to clear polls", "error", err.Error())
		return result, fmt.Errorf("failed to clear polls: %w", err)
	}
	result.Deleted = deleted

	a.logger.Info("Admin: polls cleared",
		"deleted", deleted,
		"backup_key", result.BackupKey)

	return result, nil
}

type snapshotEntry struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       int     `json:"age"`
	City      string  `json:"city"`
	Interests *string `json:"interests"`
}

func (a *Admin) backup(ctx context.Context) (string, error) {
	key := fmt.Sprintf("polls-backup-%s-%s.json", a.now().UTC().Format("20060102T150405Z"), uuid.NewString())

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(a.writeSnapshot(ctx, pw))
	}()

	err := a.storage.Upload(ctx, key, pr)
	// Unblocks the writer if Upload returned before draining the pipe.
	_ = pr.CloseWithError(io.ErrClosedPipe)
	if err != nil {
		a.logger.Error("Admin: failed to upload backup",
			"key", key,
			"error", err.Error())
		return "", fmt.Errorf("failed to upload backup: %w", err)
	}

	a.logger.Info("Admin: backup uploaded", "key", key)
	return key, nil
}

func (a *Admin) writeSnapshot(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	first := true
	for offset := 0; ; offset += backupPageSize {
		polls, err := a.pollStore.List(ctx, offset, backupPageSize)
		if err != nil {
			return fmt.Errorf("failed to list polls: %w", err)
		}

		for _, p := range polls {
			if !first {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			first = false

			if err := enc.Encode(snapshotEntry{
				ID:        p.ID,
				FirstName: p.FirstName,
				LastName:  p.LastName,
				Age:       p.Age,
				City:      p.City,
				Interests: p.Interests,
			}); err != nil {
				return err
			}
		}

		if len(polls) < backupPageSize {
			break
		}
	}

	_, err := io.WriteString(w, "]")
	return err
}

// PopulateResult describes a completed Populate.
type PopulateResult struct {
	Added   int
	Skipped int
}

// Populate inserts count generated polls with logins user_0000000 onward.
// Row n is generated from a seed derived from seed and n, so repeated runs
// produce the same data.
// Rows whose login already exists are reported to out and skipped.
func (a *Admin) Populate(ctx context.Context, count int, seed int64, out io.Writer) (PopulateResult, error) {
	var result PopulateResult

	if count < 1 || count > MaxPopulateCount {
		return result, ErrCountOutOfRange
	}

	digest := password.Hash(PopulatePassword)

	for n := 0; n < count; n++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		poll := generatePoll(n, seed, digest)

		id, err := a.pollStore.Create(ctx, poll)
		if errors.Is(err, model.ErrDuplicateLogin) {
			result.Skipped++
			fmt.Fprintf(out, "User %s already exists, skipped\n", poll.Login)
			continue
		}
		if err != nil {
			a.logger.Error("Admin: failed to insert generated poll",
				"login", poll.Login,
				"error", err.Error())
			return result, fmt.Errorf("failed to insert poll %s: %w", poll.Login, err)
		}

		result.Added++
		fmt.Fprintf(out, "User ID#%d %s %s added!\n", id, poll.FirstName, poll.LastName)
	}

	a.logger.Info("Admin: populate finished",
		"added", result.Added,
		"skipped", result.Skipped)

	return result, nil
}

func generatePoll(n int, seed int64, digest []byte) model.Poll {
	// gofakeit treats a zero seed as "random".
	rowSeed := uint64(seed) + uint64(n) + 1
	if rowSeed == 0 {
		rowSeed = 1
	}
	f := gofakeit.New(rowSeed)

	hobbies := make([]string, 0, hobbiesPerPoll)
	for range hobbiesPerPoll {
		hobbies = append(hobbies, f.Hobby())
	}
	interests := truncateRunes(strings.Join(hobbies, ", "), interestsMaxRunes)

	return model.Poll{
		FirstName:      truncateRunes(f.FirstName(), 100),
		LastName:       truncateRunes(f.LastName(), 100),
		Age:            f.IntRange(12, 100),
		City:           truncateRunes(f.City(), 100),
		Interests:      &interests,
		Login:          fmt.Sprintf("user_%07d", n),
		PasswordDigest: digest,
	}
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
