package notus

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, WithAPIKey("test-key"), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c, srv
}

func TestGetWallet(t *testing.T) {
	var gotKey, gotEOA string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotEOA = r.URL.Query().Get("externallyOwnedAccount")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"wallet":{"id":"w-1","walletAddress":"0xsmart","registeredAt":null}}`))
	})

	wallet, err := c.GetWallet(context.Background(), GetWalletRequest{ExternallyOwnedAccount: "0xeoa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q", gotKey)
	}
	if gotEOA != "0xeoa" {
		t.Errorf("externallyOwnedAccount = %q", gotEOA)
	}
	if wallet.ID != "w-1" || wallet.WalletAddress != "0xsmart" {
		t.Errorf("wallet = %+v", wallet)
	}
	if wallet.RegisteredAt != nil {
		t.Error("registeredAt should be nil before registration")
	}
}

func TestListWallets(t *testing.T) {
	var gotTake, gotOffset string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotTake = r.URL.Query().Get("take")
		gotOffset = r.URL.Query().Get("offset")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"wallets":[{"id":"w-1"},{"id":"w-2"}]}`))
	})

	wallets, err := c.ListWallets(context.Background(), ListWalletsRequest{Take: 50, Offset: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTake != "50" || gotOffset != "100" {
		t.Errorf("query take=%s offset=%s", gotTake, gotOffset)
	}
	if len(wallets) != 2 {
		t.Errorf("wallets = %d, want 2", len(wallets))
	}
}

func TestErrorResponse(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"individual not found","id":"INDIVIDUAL_NOT_FOUND"}`))
	})

	_, err := c.GetWallet(context.Background(), GetWalletRequest{ExternallyOwnedAccount: "0xeoa"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if apiErr.ID != "INDIVIDUAL_NOT_FOUND" {
		t.Errorf("id = %q", apiErr.ID)
	}
	if apiErr.Message != "individual not found" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestErrorResponseWithoutBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.ProcessKYCSession(context.Background(), "sess-1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	// message falls back to the status text when the body carries none
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, err := NewClient(srv.URL, WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	srv.Close()

	_, err = c.ListChains(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != 0 {
		t.Errorf("status = %d, want 0 for no response", apiErr.StatusCode)
	}
}

func TestUploadDocument(t *testing.T) {
	var fieldOrder []string
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mr, err := r.MultipartReader()
		if err != nil {
			t.Errorf("multipart reader: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for {
			part, err := mr.NextPart()
			if err != nil {
				break
			}
			fieldOrder = append(fieldOrder, part.FormName())
		}
		w.WriteHeader(http.StatusNoContent)
	})

	target := PresignedUpload{
		URL:    srv.URL,
		Fields: map[string]string{"key": "uploads/front.jpg"},
	}
	err := c.UploadDocument(context.Background(), target, "front.jpg", []byte("image-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fieldOrder) != 2 {
		t.Fatalf("parts = %v, want 2", fieldOrder)
	}
	// presigned form fields must precede the file part
	if fieldOrder[0] != "key" || fieldOrder[1] != "file" {
		t.Errorf("part order = %v", fieldOrder)
	}
}

func TestUploadDocumentRejected(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"signature expired"}`))
	})

	target := PresignedUpload{URL: srv.URL}
	err := c.UploadDocument(context.Background(), target, "front.jpg", []byte("x"))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden || apiErr.Message != "signature expired" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}
