package portalapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, baseURL, token string) (*Client, *MemoryTokenSource) {
	t.Helper()
	source := &MemoryTokenSource{}
	if token != "" {
		if err := source.SetToken(context.Background(), token); err != nil {
			t.Fatalf("set token: %v", err)
		}
	}
	return New(baseURL, source, zap.NewNop()), source
}

func TestRequestWithoutTokenSkipsNetwork(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL, "")
	_, err := client.Servers(context.Background())
	if !IsUnauthenticated(err) {
		t.Fatalf("expected unauthenticated error, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("request reached the backend without a token")
	}
}

func TestAuthorizationHeader(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer secret-token")
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL, "secret-token")
	if _, err := client.Servers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoginRejectedKeepsBackendMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email or password"})
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL, "")
	_, err := client.SignIn(context.Background(), "user@example.com", "wrong")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Kind != KindCredentials {
		t.Fatalf("Kind = %v, want KindCredentials", apiErr.Kind)
	}
	if apiErr.Message != "Invalid email or password" {
		t.Fatalf("Message = %q, want backend detail", apiErr.Message)
	}
}

func TestProtected401BecomesSessionExpired(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL, "stale-token")
	_, err := client.Servers(context.Background())
	if !IsSessionExpired(err) {
		t.Fatalf("expected session expired error, got %v", err)
	}
	// Текст фиксированный, тело ответа бэкенда не просачивается
	if err.Error() != msgSessionExpired {
		t.Fatalf("message = %q, want %q", err.Error(), msgSessionExpired)
	}
}

func TestOfflineClassification(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // адрес есть, слушателя нет

	client, _ := newTestClient(t, srv.URL, "some-token")
	_, err := client.Servers(context.Background())
	if !IsOffline(err) {
		t.Fatalf("expected offline error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), OfflinePrefix) {
		t.Fatalf("message %q lacks %q prefix", err.Error(), OfflinePrefix)
	}
}

func TestApplicationErrorFallbacks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "detail из тела", status: 422, body: `{"detail":"Insufficient balance"}`, wantMsg: "Insufficient balance"},
		{name: "без detail", status: 500, body: `{}`, wantMsg: "500 Internal Server Error"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client, _ := newTestClient(t, srv.URL, "token")
			_, err := client.Servers(context.Background())
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if apiErr.Kind != KindApplication {
				t.Fatalf("Kind = %v, want KindApplication", apiErr.Kind)
			}
			if apiErr.Message != tc.wantMsg {
				t.Fatalf("Message = %q, want %q", apiErr.Message, tc.wantMsg)
			}
		})
	}
}

func TestSignInThenSignOutFlow(t *testing.T) {
	t.Parallel()

	var serverHits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("login method = %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login must not carry Authorization, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"token_type":   "bearer",
		})
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("me Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "email": "user@example.com"})
	})
	mux.HandleFunc("/api/servers", func(w http.ResponseWriter, r *http.Request) {
		serverHits.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("servers Authorization = %q", got)
		}
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	client, source := newTestClient(t, srv.URL, "")

	user, err := client.SignIn(ctx, "user@example.com", "pass")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if user == nil || user.Email != "user@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// Токен должен лечь в хранилище до последующих вызовов
	stored, err := source.Token(ctx)
	if err != nil || stored != "tok-123" {
		t.Fatalf("stored token = %q, err = %v", stored, err)
	}

	if _, err := client.Servers(ctx); err != nil {
		t.Fatalf("servers after sign in: %v", err)
	}
	if serverHits.Load() != 1 {
		t.Fatalf("servers hits = %d", serverHits.Load())
	}

	client.SignOut(ctx)
	if stored, _ := source.Token(ctx); stored != "" {
		t.Fatalf("token not cleared: %q", stored)
	}

	_, err = client.Servers(ctx)
	if !IsUnauthenticated(err) {
		t.Fatalf("expected unauthenticated after sign out, got %v", err)
	}
	if serverHits.Load() != 1 {
		t.Fatalf("request went to backend after sign out")
	}
}

func TestCurrentUserNeverFails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	// Аноним: вызова нет, ошибки нет
	client, _ := newTestClient(t, srv.URL, "")
	if user := client.CurrentUser(context.Background()); user != nil {
		t.Fatalf("anonymous probe returned user: %+v", user)
	}

	// Протухший токен: вызов есть, ошибки всё равно нет
	client, _ = newTestClient(t, srv.URL, "stale")
	if user := client.CurrentUser(context.Background()); user != nil {
		t.Fatalf("stale probe returned user: %+v", user)
	}
}

func TestTokenLazilyReadFromSource(t *testing.T) {
	t.Parallel()

	source := &MemoryTokenSource{}
	if err := source.SetToken(context.Background(), "persisted"); err != nil {
		t.Fatal(err)
	}
	client := New("http://localhost:0", source, zap.NewNop())
	if got := client.Token(context.Background()); got != "persisted" {
		t.Fatalf("Token() = %q, want persisted", got)
	}
}
