package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"propdash/internal/adapters/backend"
	"propdash/internal/domain"
)

func newClient(ts *httptest.Server) *backend.Client {
	return backend.New(ts.URL, 100, 2*time.Second)
}

func TestListProperties_Decodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/properties" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(domain.ListResponse{
			Status:          "success",
			TotalProperties: 1,
			Properties:      []domain.PropertySummary{{ID: 7, Title: "Bungalow", Price: 250000, Location: "Austin"}},
		})
	}))
	defer ts.Close()

	out, err := newClient(ts).ListProperties(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.TotalProperties != 1 || len(out.Properties) != 1 || out.Properties[0].ID != 7 {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestCompareByID_PostsJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comparebyid" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		b, _ := io.ReadAll(r.Body)
		var req domain.CompareRequest
		if err := json.Unmarshal(b, &req); err != nil || req.ID1 != 1 || req.ID2 != 2 {
			t.Errorf("bad body %s", b)
		}
		_ = json.NewEncoder(w).Encode(domain.CompareResponse{Status: "success"})
	}))
	defer ts.Close()

	if _, err := newClient(ts).CompareByID(context.Background(), 1, 2); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestGetProperty_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	_, err := newClient(ts).GetProperty(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPredict_ServerErrorCarriesStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := newClient(ts).Predict(context.Background(), domain.PredictRequest{Location: "Austin", SqFt: 1200})
	var se *domain.StatusError
	if !errors.As(err, &se) || se.Code != 500 {
		t.Fatalf("err = %v, want StatusError 500", err)
	}
}

func TestTransportErrorIsNotStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	_, err := newClient(ts).ListProperties(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	var se *domain.StatusError
	if errors.As(err, &se) || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("transport error misclassified: %v", err)
	}
}

func TestMalformedBodyIsAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer ts.Close()

	if _, err := newClient(ts).ListProperties(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}
