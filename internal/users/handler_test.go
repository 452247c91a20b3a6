package users_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-vault/internal/bootstrap"
	"resume-vault/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	app, err := bootstrap.Build(config.Config{
		Env:           "dev",
		JWTSecret:     "test-secret",
		LocalStoreDir: t.TempDir(),
		ParserURL:     "http://127.0.0.1:1/process",
	})
	if err != nil {
		t.Fatalf("bootstrap.Build: %v", err)
	}
	return app.Router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestSignupAndLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup",
		`{"email":"jane@example.com","password":"hunter22"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("signup status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["msg"] != "User registered successfully" {
		t.Fatalf("signup msg = %v", body["msg"])
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"jane@example.com","password":"hunter22"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	token, _ := decodeBody(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("login returned empty token")
	}

	rec = doJSON(t, router, http.MethodGet, "/api/auth/me", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["email"] != "jane@example.com" {
		t.Fatalf("me email = %v", body["email"])
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	creds := `{"email":"dup@example.com","password":"hunter22"}`
	if rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", creds, ""); rec.Code != http.StatusOK {
		t.Fatalf("first signup status = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", creds, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["msg"] != "User already exists" {
		t.Fatalf("duplicate signup msg = %v", body["msg"])
	}
}

func TestSignupNormalizesEmailCase(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup",
		`{"email":"Jane@Example.COM","password":"hunter22"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("signup status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"jane@example.com","password":"hunter22"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login with lowercased email status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	if rec := doJSON(t, router, http.MethodPost, "/api/auth/signup",
		`{"email":"jane@example.com","password":"hunter22"}`, ""); rec.Code != http.StatusOK {
		t.Fatalf("signup status = %d", rec.Code)
	}

	cases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"jane@example.com","password":"wrong"}`},
		{"unknown email", `{"email":"nobody@example.com","password":"hunter22"}`},
		{"empty body", `{}`},
	}
	for _, tc := range cases {
		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", tc.body, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, rec.Code)
		}
		if body := decodeBody(t, rec); body["msg"] != "Invalid Credentials" {
			t.Fatalf("%s: msg = %v", tc.name, body["msg"])
		}
	}
}

func TestMeRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("me without token status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/auth/me", "", "not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("me with garbage token status = %d, want 401", rec.Code)
	}
}

func TestLogoutIsStateless(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/logout", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["msg"] != "Logged out successfully" {
		t.Fatalf("logout msg = %v", body["msg"])
	}
}
