package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cyberdetect/cdetect/internal/client/models"
	"github.com/cyberdetect/cdetect/internal/logging"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.New(io.Discard, "error")
}

func newClient(endpoints ...string) *HTTPClient {
	return NewHTTPClient(endpoints, 2*time.Second, testLogger())
}

// deadEndpoint returns a URL nothing is listening on.
func deadEndpoint(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestLogin_Success(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		jsonResponse(w, http.StatusOK, map[string]any{
			"token":  "t1",
			"userId": "u1",
			"user": map[string]string{
				"firstName": "Priya",
				"lastName":  "Sharma",
				"email":     "priya@example.org",
				"createdAt": "2024-01-15T10:00:00Z",
			},
		})
	}))
	defer srv.Close()

	res, err := newClient(srv.URL).Login(context.Background(), "priya@example.org", "secret123")
	require.NoError(t, err)
	require.Equal(t, "t1", res.Token)
	require.Equal(t, "u1", res.UserID)
	require.NotNil(t, res.User)
	require.Equal(t, "Priya", res.User.FirstName)

	require.Equal(t, map[string]string{"identifier": "priya@example.org", "password": "secret123"}, gotBody)
}

func TestLogin_AccountNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusUnauthorized, map[string]string{"error": "No user found"})
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Login(context.Background(), "x@example.org", "pw")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Login(context.Background(), "x@example.org", "pw")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.NotErrorIs(t, err, ErrAccountNotFound)
}

func TestLogin_NonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Login(context.Background(), "x@example.org", "pw")
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestLogin_FailsOverToAlternateEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"token": "t1", "userId": "u1"})
	}))
	defer srv.Close()

	c := newClient(deadEndpoint(t), srv.URL)

	res, err := c.Login(context.Background(), "a@example.org", "pw")
	require.NoError(t, err)
	require.Equal(t, "t1", res.Token)

	// the working endpoint is preferred afterwards
	require.Equal(t, 1, c.order()[0])
}

func TestLogin_AllEndpointsDown(t *testing.T) {
	c := newClient(deadEndpoint(t), deadEndpoint(t))

	_, err := c.Login(context.Background(), "a@example.org", "pw")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRegister_SurfacesRemoteMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		jsonResponse(w, http.StatusConflict, map[string]string{"error": "Email already registered"})
	}))
	defer srv.Close()

	err := newClient(srv.URL).Register(context.Background(), RegisterRequest{
		FirstName: "A", LastName: "B", Email: "a@example.org", Password: "longenough",
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "Email already registered", apiErr.Message)
}

func TestRegister_Success(t *testing.T) {
	var got RegisterRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		jsonResponse(w, http.StatusCreated, map[string]string{"message": "Account created"})
	}))
	defer srv.Close()

	err := newClient(srv.URL).Register(context.Background(), RegisterRequest{
		FirstName: "Priya", LastName: "Sharma", Email: "priya@example.org", Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, "Priya", got.FirstName)
	require.Equal(t, "secret123", got.Password)
}

func TestSearch_QueryAndAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/data1/search", r.URL.Path)
		require.Equal(t, "9876543210", r.URL.Query().Get("query"))
		require.Equal(t, "phone", r.URL.Query().Get("type"))
		require.Equal(t, "Bearer t1", r.Header.Get("Authorization"))

		jsonResponse(w, http.StatusOK, []map[string]any{
			{"Name": "Priya Sharma", "Age": 34, "Phone": "9876543210"},
		})
	}))
	defer srv.Close()

	rows, err := newClient(srv.URL).Search(context.Background(), "t1", "9876543210", models.CategoryPhone)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Priya Sharma", rows[0].Name)
	require.Equal(t, 34, rows[0].Age)
}

func TestSearch_AllCategoryOmitsTypeParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.False(t, r.URL.Query().Has("type"))
		jsonResponse(w, http.StatusOK, []map[string]any{})
	}))
	defer srv.Close()

	rows, err := newClient(srv.URL).Search(context.Background(), "t1", "Priya", models.CategoryAll)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestSearch_RejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusUnauthorized, map[string]string{"error": "token rejected"})
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Search(context.Background(), "stale", "Priya", models.CategoryAll)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	require.NoError(t, newClient(srv.URL).Health(context.Background()))
}

func TestHealth_Unreachable(t *testing.T) {
	err := newClient(deadEndpoint(t)).Health(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestJoinDate(t *testing.T) {
	require.Equal(t, "2024-01-15", joinDate("2024-01-15T10:00:00Z"))
	require.Equal(t, "yesterday", joinDate("yesterday"))
	require.Equal(t, "", joinDate(""))
}
