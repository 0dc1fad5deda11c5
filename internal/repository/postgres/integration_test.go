//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/pollkeeper/database"
	"github.com/dtroode/pollkeeper/internal/config"
	"github.com/dtroode/pollkeeper/internal/model"
	"github.com/dtroode/pollkeeper/internal/password"
	repo "github.com/dtroode/pollkeeper/internal/repository/postgres"
)

var dbConfig config.Database

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "pollkeeper_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	portNum, err := strconv.Atoi(port.Port())
	if err != nil {
		panic(err)
	}
	dbConfig = config.Database{
		Host:     host,
		Port:     portNum,
		User:     "postgres",
		Password: "password",
		Name:     "pollkeeper_test",
		SSLMode:  "disable",
		MaxConns: 20,
	}

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func setup(t *testing.T) *repo.PollRepository {
	t.Helper()

	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dbConfig)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, database.Migrate(ctx, conn.DB))
	// second run must be a no-op
	require.NoError(t, database.Migrate(ctx, conn.DB))

	pr := repo.NewPollRepository(conn)
	_, err = pr.Clear(ctx)
	require.NoError(t, err)
	return pr
}

func TestPollRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	pr := setup(t)

	polls, err := pr.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, polls)

	interests := "testing"
	id, err := pr.Create(ctx, model.Poll{
		FirstName:      "name",
		LastName:       "surname",
		Age:            89,
		City:           "city",
		Interests:      &interests,
		Login:          "user",
		PasswordDigest: password.Hash("password"),
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := pr.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "name", got.FirstName)
	assert.Equal(t, "surname", got.LastName)
	assert.Equal(t, 89, got.Age)
	assert.Equal(t, "city", got.City)
	require.NotNil(t, got.Interests)
	assert.Equal(t, interests, *got.Interests)
	assert.Nil(t, got.PasswordDigest)

	creds, err := pr.GetCredentials(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, password.Hash("password"), creds.PasswordDigest)

	_, err = pr.GetByID(ctx, id+1000)
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = pr.GetCredentials(ctx, "nobody")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = pr.Create(ctx, model.Poll{FirstName: "a", LastName: "b", Age: 1, City: "c", Login: "user", PasswordDigest: password.Hash("x")})
	require.ErrorIs(t, err, model.ErrDuplicateLogin)

	n, err := pr.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	cleared, err := pr.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)
}

func TestPollRepository_ListPagination(t *testing.T) {
	ctx := context.Background()
	pr := setup(t)

	var ids []int64
	for i := 0; i < 5; i++ {
		id, err := pr.Create(ctx, model.Poll{
			FirstName: "f", LastName: "l", Age: 20 + i, City: "c",
			Login: fmt.Sprintf("page%d", i), PasswordDigest: password.Hash("pw"),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	page, err := pr.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[1], page[0].ID)
	assert.Equal(t, ids[2], page[1].ID)

	again, err := pr.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, page, again)

	tail, err := pr.List(ctx, 4, 10)
	require.NoError(t, err)
	assert.Len(t, tail, 1)
}

func TestPollRepository_ConcurrentDuplicateLogin(t *testing.T) {
	ctx := context.Background()
	pr := setup(t)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dupes     int
		others    []error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := pr.Create(ctx, model.Poll{
				FirstName: "race", LastName: "r", Age: 30 + i, City: "X",
				Login: "racer", PasswordDigest: password.Hash("pw"),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, model.ErrDuplicateLogin):
				dupes++
			default:
				others = append(others, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, dupes)

	n, err := pr.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
