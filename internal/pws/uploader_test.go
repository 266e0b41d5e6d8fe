package pws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pwstools/pws-forward/internal/credentials"
)

func TestUploadQueryString(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte("success\n"))
	}))
	defer srv.Close()

	snapshot := "temperature 72.5\nhumidity 55\nwind_speed 5\nunknown_metric 1\n"
	params := MapSnapshot(snapshot)
	creds := credentials.Credentials{ID: "station1", Key: "secretpw"}

	client := NewClientWithURL(srv.Client(), srv.URL)
	result, err := client.Upload(context.Background(), params, creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "action=updateraw&dateutc=now&tempf=72.5&humidity=55&windspeedmph=3.106855&ID=station1&KEY=secretpw"
	if gotQuery != want {
		t.Fatalf("expected query %q, got %q", want, gotQuery)
	}

	if result.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", result.StatusCode)
	}
	if result.Body != "success\n" {
		t.Fatalf("expected body %q, got %q", "success\n", result.Body)
	}
}

// Credentials go on the wire untouched, even with reserved characters in the
// secret.
func TestUploadDoesNotEncodeCredentials(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
	}))
	defer srv.Close()

	creds := credentials.Credentials{ID: "station1", Key: "p&w=1"}

	client := NewClientWithURL(srv.Client(), srv.URL)
	if _, err := client.Upload(context.Background(), SeedParams(), creds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "action=updateraw&dateutc=now&ID=station1&KEY=p&w=1"
	if gotQuery != want {
		t.Fatalf("expected query %q, got %q", want, gotQuery)
	}
}

// The upload response is reported, never validated: a failing status code is
// not an error.
func TestUploadDoesNotCheckStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("bad password\n"))
	}))
	defer srv.Close()

	creds := credentials.Credentials{ID: "station1", Key: "wrong"}

	client := NewClientWithURL(srv.Client(), srv.URL)
	result, err := client.Upload(context.Background(), SeedParams(), creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", result.StatusCode)
	}
	if result.Body != "bad password\n" {
		t.Fatalf("unexpected body %q", result.Body)
	}
}

func TestResilientClientPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("success\n"))
	}))
	defer srv.Close()

	creds := credentials.Credentials{ID: "station1", Key: "secretpw"}

	client := NewResilientClient(NewClientWithURL(srv.Client(), srv.URL))
	result, err := client.Upload(context.Background(), SeedParams(), creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", result.StatusCode)
	}
}
