package chipdiff

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/PaesslerAG/jsonpath"
)

func classificationServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/classification/2023", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"year": 2023,
			"added": [{"id": "D", "customer": "Globex", "pdm": "Kim"}],
			"removed": [{"id": "B", "customer": "Acme", "pdm": "Lee"}],
			"reappeared": []
		}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchClassification(t *testing.T) {
	srv := classificationServer(t)

	c, err := FetchClassification(srv.Client(), srv.URL, 2023)
	if err != nil {
		t.Fatalf("FetchClassification() failed: %v", err)
	}
	if c.Year != 2023 {
		t.Errorf("Year = %d, want 2023", c.Year)
	}
	if len(c.Added) != 1 || c.Added[0].ID != "D" {
		t.Errorf("Added = %+v, want [D]", c.Added)
	}
	if len(c.Removed) != 1 || c.Removed[0].Customer != "Acme" {
		t.Errorf("Removed = %+v, want the Acme record", c.Removed)
	}
}

func TestFetchClassificationNotFound(t *testing.T) {
	srv := classificationServer(t)

	if _, err := FetchClassification(srv.Client(), srv.URL, 1999); err == nil {
		t.Error("FetchClassification() on an unknown route did not fail")
	}
}

func TestDailyClientCachesOnDisk(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/classification/2023", func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"year": 2023, "added": [], "removed": [], "reappeared": []}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := DailyClient()
	for range 2 {
		if _, err := FetchClassification(client, srv.URL, 2023); err != nil {
			t.Fatalf("FetchClassification() failed: %v", err)
		}
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1 (second pull served from cache)", hits)
	}
	if _, err := os.Stat(filepath.Join(os.TempDir(), "chipdiff-pull")); err != nil {
		t.Errorf("cache directory missing: %v", err)
	}
}

func TestFetchJSONWithJSONPath(t *testing.T) {
	srv := classificationServer(t)

	jobj, err := FetchJSON(srv.Client(), srv.URL, 2023)
	if err != nil {
		t.Fatalf("FetchJSON() failed: %v", err)
	}

	jval, err := jsonpath.Get("$.added[0].id", jobj)
	if err != nil {
		t.Fatalf("jsonpath.Get() failed: %v", err)
	}
	if jval != "D" {
		t.Errorf("$.added[0].id = %v, want D", jval)
	}
}
