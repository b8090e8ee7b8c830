package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sellora/pos-gateway/internal/config"
	"github.com/sellora/pos-gateway/pkg/apperror"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}), srv
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	ctx := WithToken(context.Background(), "tok-123")
	if err := client.do(ctx, http.MethodGet, "/api/Batches/1", nil, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	if err := client.do(context.Background(), http.MethodGet, "/api/Products", nil, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClientNormalizesUpstreamFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("batch already checked out"))
	})

	err := client.do(context.Background(), http.MethodPost, "/api/Batches/1/checkout", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != http.StatusConflict {
		t.Errorf("Code = %d, want %d", appErr.Code, http.StatusConflict)
	}
	if appErr.Message != "batch already checked out" {
		t.Errorf("Message = %q, want raw upstream body", appErr.Message)
	}
}

func TestBatchAPIGetLatestCreated(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantNil  bool
		wantErr  bool
		wantID   int64
		wantCode string
	}{
		{name: "open batch", status: 200, body: `{"id":7,"batchCode":"B-7","status":"Created","items":[]}`, wantID: 7, wantCode: "B-7"},
		{name: "404 means none", status: 404, body: "", wantNil: true},
		{name: "empty body means none", status: 200, body: "", wantNil: true},
		{name: "idless body means none", status: 200, body: `{}`, wantNil: true},
		{name: "server failure propagates", status: 500, body: "boom", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			api := NewBatchAPI(client)

			batch, err := api.GetLatestCreated(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("GetLatestCreated: %v", err)
			}
			if tt.wantNil {
				if batch != nil {
					t.Fatalf("expected no batch, got %+v", batch)
				}
				return
			}
			if batch == nil {
				t.Fatal("expected batch")
			}
			if batch.ID != tt.wantID || batch.BatchCode != tt.wantCode {
				t.Errorf("batch = %+v", batch)
			}
		})
	}
}

func TestBatchAPIGetByIDRejectsIdlessBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"Created"}`))
	})
	api := NewBatchAPI(client)

	if _, err := api.GetByID(context.Background(), 3); err == nil {
		t.Fatal("expected malformed-response error")
	}
}

func TestAuthAPILoginUniformFailure(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unauthorized", status: 401, body: "bad password"},
		{name: "server error", status: 500, body: "db down"},
		{name: "success without token", status: 200, body: `{"userId":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			api := NewAuthAPI(client)

			_, err := api.Login(context.Background(), "nafi", "justpass")
			if !errors.Is(err, apperror.ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAuthAPILoginSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Auth/login" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"accessToken":"tok","userId":4,"username":"nafi","role":"Cashier","isActive":true}`))
	})
	api := NewAuthAPI(client)

	sess, err := api.Login(context.Background(), "nafi", "justpass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.AccessToken != "tok" || sess.UserID != 4 || sess.Role != "Cashier" || !sess.IsActive {
		t.Errorf("session = %+v", sess)
	}
}
