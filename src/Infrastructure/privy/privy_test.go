package privy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, "app-1", "secret-1", WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestVerifyToken(t *testing.T) {
	var gotAuth, gotAppID, gotAppSecret string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAppID = r.Header.Get("privy-app-id")
		gotAppSecret = r.Header.Get("privy-app-secret")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"user-1","walletAddress":"0xeoa"}`))
	})

	user, err := c.VerifyToken(context.Background(), "session-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the session token must survive alongside the app credentials
	if gotAuth != "Bearer session-token" {
		t.Errorf("Authorization = %q, want Bearer session-token", gotAuth)
	}
	if gotAppID != "app-1" {
		t.Errorf("privy-app-id = %q", gotAppID)
	}
	if gotAppSecret != "secret-1" {
		t.Errorf("privy-app-secret = %q", gotAppSecret)
	}
	if user.ID != "user-1" || user.EOA != "0xeoa" {
		t.Errorf("user = %+v", user)
	}
}

func TestVerifyTokenWithoutSecret(t *testing.T) {
	var gotAuth, gotAppSecret string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAppSecret = r.Header.Get("privy-app-secret")
		w.Write([]byte(`{"id":"user-1","walletAddress":"0xeoa"}`))
	}))
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, "app-1", "", WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := c.VerifyToken(context.Background(), "session-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer session-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAppSecret != "" {
		t.Errorf("privy-app-secret = %q, want empty", gotAppSecret)
	}
}

func TestVerifyTokenRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid token"}`))
	})

	if _, err := c.VerifyToken(context.Background(), "expired"); err == nil {
		t.Fatal("expected error for rejected token")
	}
}

func TestVerifyTokenNoEmbeddedWallet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"user-1"}`))
	})

	if _, err := c.VerifyToken(context.Background(), "session-token"); err == nil {
		t.Fatal("expected error for user without embedded wallet")
	}
}
