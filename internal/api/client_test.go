package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globobank/frauddesk/internal/models"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newTestClient(t *testing.T, cfg Config) *Client {
	t.Helper()
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func writeEnvelope(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{
		"data":      data,
		"success":   true,
		"timestamp": time.Now().UTC(),
	})
}

func TestClient_BearerTokenAttached(t *testing.T) {
	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		writeEnvelope(w, models.FraudCase{ID: "42"})
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL, Tokens: staticTokens("abc")})

	_, err := c.FraudCase(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth.Load())
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		writeEnvelope(w, []models.FraudCase{})
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL, Tokens: staticTokens("")})

	_, _, err := c.FraudCases(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Equal(t, "", gotAuth.Load())
}

func TestClient_UnauthorizedNormalizedAndHookFires(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid or expired token"})
	}))
	defer srv.Close()

	hookCalls := 0
	c := newTestClient(t, Config{
		BaseURL:        srv.URL,
		Tokens:         staticTokens("stale"),
		OnUnauthorized: func() { hookCalls++ },
	})

	_, err := c.FraudCase(context.Background(), "42")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeUnauthorized, apiErr.Code)
	assert.Equal(t, "invalid or expired token", apiErr.Message)
	assert.Equal(t, 1, hookCalls)
}

func TestClient_ReadRetriesOnServerError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeEnvelope(w, models.FraudCase{ID: "42"})
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	fc, err := c.FraudCase(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", fc.ID)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClient_ReadGivesUpAfterThreeAttempts(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	_, err := c.FraudCase(context.Background(), "42")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeServerError, apiErr.Code)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClient_ClientErrorsNeverRetried(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusTooManyRequests} {
		var attempts atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts.Add(1)
			w.WriteHeader(status)
		}))

		c := newTestClient(t, Config{BaseURL: srv.URL})
		_, err := c.FraudCase(context.Background(), "42")
		require.Error(t, err, "status %d", status)
		assert.Equal(t, int32(1), attempts.Load(), "status %d must not be retried", status)
		srv.Close()
	}
}

func TestClient_CachedReadSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeEnvelope(w, []models.FraudCase{{ID: "42"}})
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	for range 3 {
		cases, _, err := c.FraudCases(context.Background(), ListParams{Page: 1})
		require.NoError(t, err)
		require.Len(t, cases, 1)
	}
	assert.Equal(t, int32(1), hits.Load())

	// A structurally different key is its own entry.
	_, _, err := c.FraudCases(context.Background(), ListParams{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_WriteInvalidatesFamily(t *testing.T) {
	var listHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /fraud-cases", func(w http.ResponseWriter, r *http.Request) {
		listHits.Add(1)
		writeEnvelope(w, []models.FraudCase{{ID: "42"}})
	})
	mux.HandleFunc("POST /fraud-cases", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, models.FraudCase{ID: "43"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	_, _, err := c.FraudCases(context.Background(), ListParams{})
	require.NoError(t, err)
	_, _, err = c.FraudCases(context.Background(), ListParams{})
	require.NoError(t, err)
	require.Equal(t, int32(1), listHits.Load())

	_, err = c.CreateFraudCase(context.Background(), models.CreateFraudCaseInput{CustomerID: "c-1"})
	require.NoError(t, err)

	// The list read after a confirmed write goes back to the server.
	_, _, err = c.FraudCases(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), listHits.Load())
}

// flakyTransport fails the first n round trips at the transport layer.
type flakyTransport struct {
	failures atomic.Int32
	failN    int32
	next     http.RoundTripper
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if f.failures.Add(1) <= f.failN {
		return nil, errors.New("connection reset")
	}
	return f.next.RoundTrip(req)
}

func TestClient_WriteRetriedOnceOnNetworkError(t *testing.T) {
	var posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		writeEnvelope(w, models.FraudCase{ID: "43"})
	}))
	defer srv.Close()

	c := newTestClient(t, Config{
		BaseURL:   srv.URL,
		Transport: &flakyTransport{failN: 1, next: http.DefaultTransport},
	})

	fc, err := c.CreateFraudCase(context.Background(), models.CreateFraudCaseInput{CustomerID: "c-1"})
	require.NoError(t, err)
	assert.Equal(t, "43", fc.ID)
	assert.Equal(t, int32(1), posts.Load())
}

func TestClient_WriteNotRetriedOnServerError(t *testing.T) {
	var posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	_, err := c.CreateFraudCase(context.Background(), models.CreateFraudCaseInput{CustomerID: "c-1"})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeServerError, apiErr.Code)
	assert.Equal(t, int32(1), posts.Load())
}

func TestClient_TimeoutIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})

	_, err := c.Me(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNetworkError, apiErr.Code)
}

func TestClient_Login(t *testing.T) {
	t.Run("success returns user and token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			var req models.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "analyst@globobank.com", req.Email)

			json.NewEncoder(w).Encode(models.LoginResponse{
				User:  &models.User{ID: "user-1", Email: req.Email, Role: models.RoleAnalyst},
				Token: "abc",
			})
		}))
		defer srv.Close()

		c := newTestClient(t, Config{BaseURL: srv.URL})

		user, token, err := c.Login(context.Background(), "analyst@globobank.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "abc", token)
	})

	t.Run("empty credentials fail locally", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no network call expected")
		}))
		defer srv.Close()

		c := newTestClient(t, Config{BaseURL: srv.URL})

		_, _, err := c.Login(context.Background(), "", "")
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, CodeValidation, apiErr.Code)
	})

	t.Run("bad credentials surface the server message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
		}))
		defer srv.Close()

		c := newTestClient(t, Config{BaseURL: srv.URL})

		_, _, err := c.Login(context.Background(), "analyst@globobank.com", "wrong")
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, CodeUnauthorized, apiErr.Code)
		assert.Equal(t, "invalid credentials", apiErr.Message)
	})
}

func TestClient_PaginationDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data":       []models.FraudCase{{ID: "42"}},
			"success":    true,
			"timestamp":  time.Now().UTC(),
			"pagination": models.Pagination{Page: 2, Limit: 10, Total: 35, TotalPages: 4},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseURL: srv.URL})

	_, page, err := c.FraudCases(context.Background(), ListParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, 35, page.Total)
	assert.Equal(t, 4, page.TotalPages)
}
