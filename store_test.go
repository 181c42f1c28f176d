package themeforge

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRecordAndGet(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.Record(ConversionRun{
		Input:       "page.html",
		Output:      "page.html.twig",
		Target:      "twig",
		Assets:      5,
		Loops:       1,
		Suggestions: 2,
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero id")
	}

	run, err := s.Get(id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if run.Input != "page.html" || run.Target != "twig" || run.Assets != 5 {
		t.Errorf("unexpected run: %+v", run)
	}
	if run.CreatedAt == "" {
		t.Errorf("expected CreatedAt to be filled")
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := setupTestStore(t)
	if _, err := s.Get(42); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreListNewestFirst(t *testing.T) {
	s := setupTestStore(t)
	for _, input := range []string{"a.html", "b.html", "c.html"} {
		if _, err := s.Record(ConversionRun{Input: input, Output: input + ".twig", Target: "twig"}); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	runs, err := s.List(0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].Input != "c.html" || runs[2].Input != "a.html" {
		t.Errorf("expected newest first, got %q..%q", runs[0].Input, runs[2].Input)
	}

	limited, err := s.List(2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(limited) != 2 || limited[0].Input != "c.html" {
		t.Errorf("unexpected limited list: %+v", limited)
	}
}
