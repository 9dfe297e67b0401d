package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp CSV: %v", err)
	}
	return path
}

const irisCSV = `SepalLength,SepalWidth,PetalLength,PetalWidth,Name
5.1,3.5,1.4,0.2,Iris-setosa
4.9,3.0,1.4,0.2,Iris-setosa
7.0,3.2,4.7,1.4,Iris-versicolor
6.3,3.3,6.0,2.5,Iris-virginica
`

func TestLoadIrisFromFile(t *testing.T) {
	loader := NewLoader()
	table, err := loader.LoadIris(context.Background(), writeTempCSV(t, irisCSV))
	if err != nil {
		t.Fatalf("LoadIris failed: %v", err)
	}

	if len(table.Rows) != 4 {
		t.Errorf("Expected 4 rows, got %d", len(table.Rows))
	}
	wantSpecies := []string{"Iris-setosa", "Iris-versicolor", "Iris-virginica"}
	if len(table.Species) != len(wantSpecies) {
		t.Fatalf("Species = %v, want %v", table.Species, wantSpecies)
	}
	for i, sp := range wantSpecies {
		if table.Species[i] != sp {
			t.Errorf("Species[%d] = %q, want %q (sorted)", i, table.Species[i], sp)
		}
	}
	if table.Rows[0].SepalLength != 5.1 || table.Rows[0].Species != "Iris-setosa" {
		t.Errorf("First row = %+v", table.Rows[0])
	}
}

func TestLoadIrisFromHTTP(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(irisCSV))
	}))
	defer ts.Close()

	table, err := NewLoader().LoadIris(context.Background(), ts.URL+"/iris.csv")
	if err != nil {
		t.Fatalf("LoadIris over HTTP failed: %v", err)
	}
	if len(table.Rows) != 4 {
		t.Errorf("Expected 4 rows, got %d", len(table.Rows))
	}
}

func TestLoadIrisMissingFile(t *testing.T) {
	_, err := NewLoader().LoadIris(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLoadIrisHTTP404(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	_, err := NewLoader().LoadIris(context.Background(), ts.URL+"/iris.csv")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for 404, got %v", err)
	}
}

func TestLoadIrisMissingColumn(t *testing.T) {
	csv := "SepalLength,SepalWidth,PetalLength,PetalWidth\n5.1,3.5,1.4,0.2\n"
	_, err := NewLoader().LoadIris(context.Background(), writeTempCSV(t, csv))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed for missing Name column, got %v", err)
	}
}

func TestLoadIrisHeaderOnly(t *testing.T) {
	csv := "SepalLength,SepalWidth,PetalLength,PetalWidth,Name\n"
	_, err := NewLoader().LoadIris(context.Background(), writeTempCSV(t, csv))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed for header-only CSV, got %v", err)
	}
}

func TestLoadIrisDropsBadRows(t *testing.T) {
	csv := irisCSV + "not-a-number,3.0,1.4,0.2,Iris-setosa\n"
	table, err := NewLoader().LoadIris(context.Background(), writeTempCSV(t, csv))
	if err != nil {
		t.Fatalf("LoadIris failed: %v", err)
	}
	if len(table.Rows) != 4 {
		t.Errorf("Expected bad row to be dropped, got %d rows", len(table.Rows))
	}
}

func TestLoadIrisAllRowsBad(t *testing.T) {
	csv := "SepalLength,SepalWidth,PetalLength,PetalWidth,Name\nx,y,z,w,Iris-setosa\n"
	_, err := NewLoader().LoadIris(context.Background(), writeTempCSV(t, csv))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed when every row is unparseable, got %v", err)
	}
}
