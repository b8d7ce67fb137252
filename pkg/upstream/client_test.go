package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"bakery_frontdesk/pkg/models"
)

// breadStub is a minimal stateful upstream for round-trip tests.
func breadStub(t *testing.T) *httptest.Server {
	t.Helper()
	var breads []models.Bread
	nextID := 1

	mux := http.NewServeMux()
	mux.HandleFunc("/bread", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(breads)
		case http.MethodPost:
			var b models.Bread
			if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			b.ID = nextID
			nextID++
			breads = append(breads, b)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(b)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/bread/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/bread/")
		for i, b := range breads {
			if id == strconv.Itoa(b.ID) {
				breads = append(breads[:i], breads[i+1:]...)
				json.NewEncoder(w).Encode(map[string]string{"message": "Bread deleted"})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "No record found"})
	})
	return httptest.NewServer(mux)
}

func TestBreadRoundTrip(t *testing.T) {
	srv := breadStub(t)
	defer srv.Close()

	client := New(srv.URL, srv.URL, 5*time.Second)
	ctx := context.Background()

	created, err := client.CreateBread(ctx, "token", models.Bread{
		Name:  "Whole Wheat",
		Size:  models.BreadSizeBal20,
		Price: 50,
	})
	if err != nil {
		t.Fatalf("CreateBread: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a server-assigned id")
	}

	listed, err := client.ListBread(ctx, "token")
	if err != nil {
		t.Fatalf("ListBread: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 bread, got %d", len(listed))
	}
	got := listed[0]
	if got.Name != "Whole Wheat" || got.Size != models.BreadSizeBal20 || got.Price != 50 {
		t.Errorf("round-trip changed fields: %+v", got)
	}
}

// a second delete of the same id must yield a not-found error, not a crash
func TestDeleteBreadTwice(t *testing.T) {
	srv := breadStub(t)
	defer srv.Close()

	client := New(srv.URL, srv.URL, 5*time.Second)
	ctx := context.Background()

	created, err := client.CreateBread(ctx, "token", models.Bread{Name: "Rye", Size: models.BreadSizeBal10, Price: 30})
	if err != nil {
		t.Fatalf("CreateBread: %v", err)
	}

	if err := client.DeleteBread(ctx, "token", created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}

	err = client.DeleteBread(ctx, "token", created.ID)
	if err == nil {
		t.Fatal("second delete should fail")
	}
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Code != CodeNotFound {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeNotFound)
	}
}

func TestDoCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := New(srv.URL, srv.URL, 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListBread(ctx, "token")
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.Code != CodeUnavailable {
		t.Errorf("expected UPSTREAM_UNAVAILABLE, got %v", err)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL, srv.URL, 5*time.Second)
	if _, err := client.ListBread(context.Background(), "secret-token"); err != nil {
		t.Fatalf("ListBread: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
}
