package dataset

import (
	"context"
	"errors"
	"testing"
)

const quakesCSV = `Date,Time,Latitude,Longitude,Type,Depth,Magnitude
01/05/1965,18:05:58,-20.579,-173.972,Earthquake,20.0,6.2
01/02/1965,13:44:18,19.246,145.616,Earthquake,131.6,6.0
1968-04-09T02:45:00.000Z,,38.143,-118.120,Earthquake,10.0,6.8
07/04/1970,04:53:11,-15.292,-173.428,Earthquake,22.0,7.1
`

func TestLoadQuakes(t *testing.T) {
	table, err := NewLoader().LoadQuakes(context.Background(), writeTempCSV(t, quakesCSV))
	if err != nil {
		t.Fatalf("LoadQuakes failed: %v", err)
	}

	if len(table.Rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(table.Rows))
	}
	// Sorted by event time regardless of input order.
	for i := 1; i < len(table.Rows); i++ {
		if table.Rows[i].Time.Before(table.Rows[i-1].Time) {
			t.Errorf("Rows not sorted by time at index %d", i)
		}
	}
	if table.Rows[0].Year != 1965 || table.Rows[3].Year != 1970 {
		t.Errorf("Year derivation wrong: first %d, last %d", table.Rows[0].Year, table.Rows[3].Year)
	}

	lo, hi := table.YearRange()
	if lo != 1965 || hi != 1970 {
		t.Errorf("YearRange = [%d,%d], want [1965,1970]", lo, hi)
	}
}

func TestLoadQuakesMixedTimestampFormats(t *testing.T) {
	table, err := NewLoader().LoadQuakes(context.Background(), writeTempCSV(t, quakesCSV))
	if err != nil {
		t.Fatalf("LoadQuakes failed: %v", err)
	}
	var found bool
	for _, row := range table.Rows {
		if row.Year == 1968 {
			found = true
			if row.Magnitude != 6.8 {
				t.Errorf("ISO-timestamp row magnitude = %.1f, want 6.8", row.Magnitude)
			}
		}
	}
	if !found {
		t.Error("ISO-timestamp row was not parsed")
	}
}

func TestLoadQuakesDropsBadRows(t *testing.T) {
	csv := quakesCSV +
		"garbage-date,00:00:00,0.0,0.0,Earthquake,1.0,5.0\n" +
		"01/01/1969,00:00:00,not-a-float,0.0,Earthquake,1.0,5.0\n"
	table, err := NewLoader().LoadQuakes(context.Background(), writeTempCSV(t, csv))
	if err != nil {
		t.Fatalf("LoadQuakes failed: %v", err)
	}
	if len(table.Rows) != 4 {
		t.Errorf("Expected 4 usable rows, got %d", len(table.Rows))
	}
	if table.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", table.Dropped)
	}
}

func TestLoadQuakesMissingColumn(t *testing.T) {
	csv := "Date,Latitude,Longitude\n01/02/1965,19.2,145.6\n"
	_, err := NewLoader().LoadQuakes(context.Background(), writeTempCSV(t, csv))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed for missing Magnitude column, got %v", err)
	}
}

func TestLoadQuakesNoUsableRows(t *testing.T) {
	csv := "Date,Latitude,Longitude,Magnitude\nbad,bad,bad,bad\n"
	_, err := NewLoader().LoadQuakes(context.Background(), writeTempCSV(t, csv))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed when every row drops, got %v", err)
	}
}
