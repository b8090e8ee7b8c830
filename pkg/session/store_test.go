package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/enum"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(cookies []*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, w
}

func TestSetWritesAllFiveCookies(t *testing.T) {
	store := NewStore(7*24*time.Hour, false)
	c, w := testContext(nil)

	store.Set(c, &entity.Session{
		AccessToken: "tok",
		UserID:      4,
		Username:    "nafi",
		Role:        enum.RoleCashier,
		IsActive:    true,
	})

	got := map[string]*http.Cookie{}
	for _, ck := range w.Result().Cookies() {
		got[ck.Name] = ck
	}

	want := map[string]string{
		"accessToken": "tok",
		"userId":      "4",
		"username":    "nafi",
		"role":        "Cashier",
		"isActive":    "true",
	}
	for name, value := range want {
		ck, ok := got[name]
		if !ok {
			t.Errorf("cookie %q not written", name)
			continue
		}
		if ck.Value != value {
			t.Errorf("cookie %q = %q, want %q", name, ck.Value, value)
		}
		if ck.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
			t.Errorf("cookie %q MaxAge = %d, want 7 days", name, ck.MaxAge)
		}
		if !ck.HttpOnly {
			t.Errorf("cookie %q should be HttpOnly", name)
		}
	}
}

func TestGetRoundTripsSession(t *testing.T) {
	store := NewStore(time.Hour, false)
	c, _ := testContext([]*http.Cookie{
		{Name: "accessToken", Value: "tok"},
		{Name: "userId", Value: "4"},
		{Name: "username", Value: "nafi"},
		{Name: "role", Value: "Admin"},
		{Name: "isActive", Value: "true"},
	})

	sess, ok := store.Get(c)
	if !ok {
		t.Fatal("expected session")
	}
	if sess.AccessToken != "tok" || sess.UserID != 4 || sess.Username != "nafi" {
		t.Errorf("session = %+v", sess)
	}
	if sess.Role != enum.RoleAdmin || !sess.IsActive {
		t.Errorf("session = %+v", sess)
	}
}

func TestGetWithoutTokenReportsNoSession(t *testing.T) {
	store := NewStore(time.Hour, false)
	c, _ := testContext([]*http.Cookie{
		{Name: "role", Value: "Admin"},
	})

	if _, ok := store.Get(c); ok {
		t.Error("session without an access token must not authenticate")
	}
}

func TestGetToleratesPartialCookieSet(t *testing.T) {
	store := NewStore(time.Hour, false)
	c, _ := testContext([]*http.Cookie{
		{Name: "accessToken", Value: "tok"},
	})

	sess, ok := store.Get(c)
	if !ok {
		t.Fatal("expected session from token alone")
	}
	if sess.UserID != 0 || sess.Username != "" || sess.Role != "" || sess.IsActive {
		t.Errorf("missing cookies should zero out, got %+v", sess)
	}
}

func TestRoleAndAccessTokenAreLocalReads(t *testing.T) {
	store := NewStore(time.Hour, false)
	c, _ := testContext([]*http.Cookie{
		{Name: "accessToken", Value: "tok"},
		{Name: "role", Value: "Cashier"},
	})

	if got := store.Role(c); got != enum.RoleCashier {
		t.Errorf("Role = %q, want Cashier", got)
	}
	if got := store.AccessToken(c); got != "tok" {
		t.Errorf("AccessToken = %q, want tok", got)
	}

	empty, _ := testContext(nil)
	if got := store.Role(empty); got != "" {
		t.Errorf("Role = %q, want empty without cookies", got)
	}
}

func TestClearExpiresEveryCookie(t *testing.T) {
	store := NewStore(time.Hour, false)
	c, w := testContext(nil)

	store.Clear(c)

	cookies := w.Result().Cookies()
	if len(cookies) != 5 {
		t.Fatalf("cleared %d cookies, want 5", len(cookies))
	}
	for _, ck := range cookies {
		if ck.MaxAge != -1 {
			t.Errorf("cookie %q MaxAge = %d, want -1", ck.Name, ck.MaxAge)
		}
		if ck.Value != "" {
			t.Errorf("cookie %q still carries %q", ck.Name, ck.Value)
		}
	}
}
