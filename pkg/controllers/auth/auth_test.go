package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"bakery_frontdesk/pkg/middleware"
	"bakery_frontdesk/pkg/models"
	"bakery_frontdesk/pkg/upstream"
)

func upstreamToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   1,
		"role": "manager",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte("upstream-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func loginStub(t *testing.T, token string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req upstream.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Password != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Incorrect password"})
			return
		}
		json.NewEncoder(w).Encode(upstream.LoginResponse{
			Message: "Login successful",
			User:    models.User{ID: 1, Name: "Abebe Kebede", Role: models.RoleManager, Phone: "0911223344"},
			Token:   token,
		})
	}))
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("session", store))
	r.POST("/login", Login)
	r.POST("/logout", Logout)
	r.GET("/me", middleware.RequireAuth(), Me)
	return r
}

func TestLoginStoresSession(t *testing.T) {
	token := upstreamToken(t)
	srv := loginStub(t, token)
	defer srv.Close()
	upstream.Default = upstream.New(srv.URL, srv.URL, 5*time.Second)

	router := testRouter()

	body := `{"phone":"0911223344","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a session cookie")
	}

	// the identity must be readable from the session on a later request
	me := httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, ck := range cookies {
		me.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, me)

	if w2.Code != http.StatusOK {
		t.Fatalf("me status = %d, body %s", w2.Code, w2.Body.String())
	}
	if !strings.Contains(w2.Body.String(), "Abebe Kebede") {
		t.Errorf("me response missing user, got %s", w2.Body.String())
	}
}

func TestLoginIncorrectPasswordVerbatim(t *testing.T) {
	token := upstreamToken(t)
	srv := loginStub(t, token)
	defer srv.Close()
	upstream.Default = upstream.New(srv.URL, srv.URL, 5*time.Second)

	router := testRouter()

	body := `{"phone":"0911223344","password":"wrongpass"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Incorrect password") {
		t.Errorf("expected verbatim upstream message, got %s", w.Body.String())
	}
}

func TestMeWithoutSession(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	token := upstreamToken(t)
	srv := loginStub(t, token)
	defer srv.Close()
	upstream.Default = upstream.New(srv.URL, srv.URL, 5*time.Second)

	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"phone":"0911223344","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	cookies := w.Result().Cookies()

	out := httptest.NewRequest(http.MethodPost, "/logout", nil)
	for _, ck := range cookies {
		out.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, out)
	if w2.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w2.Code)
	}

	me := httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, ck := range w2.Result().Cookies() {
		me.AddCookie(ck)
	}
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, me)
	if w3.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout = %d, want 401", w3.Code)
	}
}
