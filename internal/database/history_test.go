package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) *HistoryDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func record(day int, savedAt time.Time) *Record {
	d := time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
	name := d.Format("Jan") + d.Format("2") + "24.puz"
	return &Record{
		PuzzleDate: d,
		DateText:   d.Format("1/2/2006"),
		Filename:   name,
		Path:       filepath.Join("/puzzles", name),
		Title:      "NY TIMES " + d.Format("Mon"),
		Author:     "Jane Doe / Will Shortz",
		Width:      15,
		Height:     15,
		ClueCount:  76,
		SavedAt:    savedAt,
	}
}

// TestOpen tests database opening and creation.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "newdir", "subdir")
		db, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dbDir, FileName)); err != nil {
			t.Errorf("database file was not created: %v", err)
		}
		if db.Path() != filepath.Join(dbDir, FileName) {
			t.Errorf("Path() = %q", db.Path())
		}
	})

	t.Run("CreateIfNotExists=false returns error when database does not exist", func(t *testing.T) {
		t.Parallel()

		_, err := Open(filepath.Join(t.TempDir(), "missing"), Options{CreateIfNotExists: false})
		if err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("reopening keeps existing records", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		if _, err := db.SaveRecord(context.Background(), record(7, time.Time{})); err != nil {
			t.Fatalf("SaveRecord: %v", err)
		}
		_ = db.Close()

		db, err = Open(dir, Options{CreateIfNotExists: false, EnableWAL: true})
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		defer db.Close()

		records, err := db.ListRecords(context.Background(), 0)
		if err != nil {
			t.Fatalf("ListRecords: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("expected 1 record, got %d", len(records))
		}
	})
}

// TestSaveRecord tests inserting and upserting records.
func TestSaveRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("saved record can be read back", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)

		saved := time.Date(2024, time.March, 7, 12, 30, 0, 0, time.UTC)
		in := record(7, saved)
		id, err := db.SaveRecord(ctx, in)
		if err != nil {
			t.Fatalf("SaveRecord: %v", err)
		}
		if id == 0 {
			t.Error("expected non-zero id")
		}

		got, err := db.GetRecord(ctx, in.Path)
		if err != nil {
			t.Fatalf("GetRecord: %v", err)
		}
		if got == nil {
			t.Fatal("expected a record")
		}
		if got.ID != id || got.Filename != "Mar724.puz" || got.DateText != "3/7/2024" {
			t.Errorf("unexpected record: %+v", got)
		}
		if !got.PuzzleDate.Equal(in.PuzzleDate) {
			t.Errorf("PuzzleDate = %v, want %v", got.PuzzleDate, in.PuzzleDate)
		}
		if !got.SavedAt.Equal(saved) {
			t.Errorf("SavedAt = %v, want %v", got.SavedAt, saved)
		}
		if got.Width != 15 || got.Height != 15 || got.ClueCount != 76 {
			t.Errorf("unexpected dimensions: %+v", got)
		}
	})

	t.Run("saving the same path updates the row", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)

		first := record(7, time.Time{})
		id1, err := db.SaveRecord(ctx, first)
		if err != nil {
			t.Fatalf("SaveRecord: %v", err)
		}
		second := record(7, time.Time{})
		second.Title = "Updated"
		id2, err := db.SaveRecord(ctx, second)
		if err != nil {
			t.Fatalf("SaveRecord: %v", err)
		}
		if id1 != id2 {
			t.Errorf("expected same id, got %d and %d", id1, id2)
		}

		records, err := db.ListRecords(ctx, 0)
		if err != nil {
			t.Fatalf("ListRecords: %v", err)
		}
		if len(records) != 1 || records[0].Title != "Updated" {
			t.Errorf("unexpected records: %+v", records)
		}
	})

	t.Run("zero SavedAt uses the current time", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)

		before := time.Now().Add(-time.Second)
		in := record(3, time.Time{})
		if _, err := db.SaveRecord(ctx, in); err != nil {
			t.Fatalf("SaveRecord: %v", err)
		}
		got, err := db.GetRecord(ctx, in.Path)
		if err != nil {
			t.Fatalf("GetRecord: %v", err)
		}
		if got.SavedAt.Before(before) {
			t.Errorf("SavedAt = %v, expected after %v", got.SavedAt, before)
		}
	})
}

// TestQueries tests listing, latest and missing lookups.
func TestQueries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	db := setupTestDB(t)
	// Saved out of puzzle-date order on purpose.
	for i, day := range []int{5, 7, 2} {
		if _, err := db.SaveRecord(ctx, record(day, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("SaveRecord: %v", err)
		}
	}

	t.Run("list is newest saved first", func(t *testing.T) {
		t.Parallel()
		records, err := db.ListRecords(ctx, 0)
		if err != nil {
			t.Fatalf("ListRecords: %v", err)
		}
		var got []string
		for _, r := range records {
			got = append(got, r.Filename)
		}
		want := []string{"Mar224.puz", "Mar724.puz", "Mar524.puz"}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("got %v, want %v", got, want)
				break
			}
		}
	})

	t.Run("limit caps the list", func(t *testing.T) {
		t.Parallel()
		records, err := db.ListRecords(ctx, 2)
		if err != nil {
			t.Fatalf("ListRecords: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("expected 2 records, got %d", len(records))
		}
	})

	t.Run("latest is by puzzle date", func(t *testing.T) {
		t.Parallel()
		r, err := db.LatestRecord(ctx)
		if err != nil {
			t.Fatalf("LatestRecord: %v", err)
		}
		if r == nil || r.Filename != "Mar724.puz" {
			t.Errorf("latest = %+v, want Mar724.puz", r)
		}
	})

	t.Run("missing path returns nil", func(t *testing.T) {
		t.Parallel()
		r, err := db.GetRecord(ctx, "/nowhere.puz")
		if err != nil {
			t.Fatalf("GetRecord: %v", err)
		}
		if r != nil {
			t.Errorf("expected nil, got %+v", r)
		}
	})
}

// TestEmptyHistory tests queries on an empty database.
func TestEmptyHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)

	r, err := db.LatestRecord(ctx)
	if err != nil {
		t.Fatalf("LatestRecord: %v", err)
	}
	if r != nil {
		t.Errorf("expected nil, got %+v", r)
	}

	records, err := db.ListRecords(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

// TestDeleteRecord tests removal of records.
func TestDeleteRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)

	in := record(7, time.Time{})
	if _, err := db.SaveRecord(ctx, in); err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}
	if err := db.DeleteRecord(ctx, in.Path); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if err := db.DeleteRecord(ctx, in.Path); err != nil {
		t.Fatalf("second DeleteRecord: %v", err)
	}
	got, err := db.GetRecord(ctx, in.Path)
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if got != nil {
		t.Error("expected record to be deleted")
	}
}
