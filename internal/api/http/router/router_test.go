package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/pollkeeper/internal/api/http/context"
	"github.com/dtroode/pollkeeper/internal/model"
	"github.com/dtroode/pollkeeper/internal/service"
	"github.com/dtroode/pollkeeper/internal/testutil"
)

type memoryStore struct {
	mu    sync.Mutex
	polls []model.Poll
}

var _ model.PollStore = (*memoryStore)(nil)

func (s *memoryStore) Create(_ context.Context, poll model.Poll) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.polls {
		if p.Login == poll.Login {
			return 0, model.ErrDuplicateLogin
		}
	}
	poll.ID = int64(len(s.polls) + 1)
	s.polls = append(s.polls, poll)
	return poll.ID, nil
}

func (s *memoryStore) List(_ context.Context, offset, limit int) ([]model.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Poll, 0)
	for i := offset; i < len(s.polls) && len(out) < limit; i++ {
		out = append(out, s.polls[i])
	}
	return out, nil
}

func (s *memoryStore) GetByID(_ context.Context, id int64) (model.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.polls {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Poll{}, model.ErrNotFound
}

func (s *memoryStore) GetCredentials(_ context.Context, login string) (model.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.polls {
		if p.Login == login {
			return model.Credentials{Login: p.Login, PasswordDigest: p.PasswordDigest}, nil
		}
	}
	return model.Credentials{}, model.ErrNotFound
}

func (s *memoryStore) Clear(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.polls))
	s.polls = nil
	return n, nil
}

func (s *memoryStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.polls)), nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestServer(t *testing.T, pingErr error) *httptest.Server {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	store := &memoryStore{}

	r := New(
		service.NewAuth(store, lg),
		service.NewPoll(store, lg),
		fakePinger{err: pingErr},
		httpcontext.NewManager(),
		[]string{"*"},
		lg,
	)

	srv := httptest.NewServer(r.Register())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string, auth func(*http.Request)) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != nil {
		auth(req)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func basic(login, password string) func(*http.Request) {
	return func(r *http.Request) { r.SetBasicAuth(login, password) }
}

const registerBody = `{"first_name":"Ann","last_name":"Lee","age":30,"city":"X","login":"user_001","password":"pw1"}`

func TestRouter_RegisterThenRead(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)

	resp := do(t, http.MethodPost, srv.URL+"/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, float64(1), created["id"])
	assert.NotContains(t, created, "password")
	assert.NotContains(t, created, "login")

	resp = do(t, http.MethodGet, srv.URL+"/polls/1", "", basic("user_001", "pw1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Ann", got["first_name"])
	assert.Equal(t, "Lee", got["last_name"])
	assert.Equal(t, float64(30), got["age"])
	assert.Equal(t, "X", got["city"])
	assert.Nil(t, got["interests"])

	resp = do(t, http.MethodGet, srv.URL+"/polls/1", "", basic("user_001", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, `Basic realm="polls"`, resp.Header.Get("WWW-Authenticate"))

	resp = do(t, http.MethodGet, srv.URL+"/polls/999", "", basic("user_001", "pw1"))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/polls/", "", basic("user_001", "pw1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)

	resp = do(t, http.MethodGet, srv.URL+"/polls?offset=5", "", basic("user_001", "pw1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRouter_UnknownLoginMatchesWrongPassword(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, srv.URL+"/register", registerBody, nil).StatusCode)

	wrongPassword := do(t, http.MethodGet, srv.URL+"/polls", "", basic("user_001", "nope"))
	unknownLogin := do(t, http.MethodGet, srv.URL+"/polls", "", basic("ghost", "nope"))
	missing := do(t, http.MethodGet, srv.URL+"/polls", "", nil)

	for _, resp := range []*http.Response{wrongPassword, unknownLogin, missing} {
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	var a, b map[string]any
	require.NoError(t, json.NewDecoder(wrongPassword.Body).Decode(&a))
	require.NoError(t, json.NewDecoder(unknownLogin.Body).Decode(&b))
	assert.Equal(t, a, b)
}

func TestRouter_DuplicateAndInvalidRegistration(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)

	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, srv.URL+"/register", registerBody, nil).StatusCode)

	resp := do(t, http.MethodPost, srv.URL+"/register", registerBody, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var dup map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dup))
	assert.Contains(t, dup["message"], "user_001")

	resp = do(t, http.MethodPost, srv.URL+"/register",
		`{"first_name":"Ann","last_name":"Lee","age":-1,"city":"X","login":"bad login","password":"pw1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var invalid struct {
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&invalid))
	names := make([]string, 0, len(invalid.Fields))
	for _, f := range invalid.Fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"age", "login"}, names)
}

func TestRouter_ConcurrentDuplicateRegistration(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)

	const workers = 8
	codes := make(chan int, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(srv.URL+"/register", "application/json", strings.NewReader(registerBody))
			if err != nil {
				codes <- 0
				return
			}
			_ = resp.Body.Close()
			codes <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(codes)

	created := 0
	for code := range codes {
		if code == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusBadRequest, code)
		}
	}
	assert.Equal(t, 1, created)
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	up := newTestServer(t, nil)
	assert.Equal(t, http.StatusOK, do(t, http.MethodGet, up.URL+"/health", "", nil).StatusCode)

	down := newTestServer(t, errors.New("db down"))
	assert.Equal(t, http.StatusServiceUnavailable, do(t, http.MethodGet, down.URL+"/health", "", nil).StatusCode)
}

func TestRouter_InvalidPathID(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	require.Equal(t, http.StatusCreated, do(t, http.MethodPost, srv.URL+"/register", registerBody, nil).StatusCode)

	resp := do(t, http.MethodGet, srv.URL+"/polls/abc", "", basic("user_001", "pw1"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/polls/abc", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
