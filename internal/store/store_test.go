package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"socialagent/internal/models"
)

func sample(ts time.Time) models.GeneratedContent {
	return models.GeneratedContent{
		ID:          uuid.New(),
		Content:     "Rates at 6.88% this week.",
		MainContent: "Rates at 6.88% this week.",
		Platform:    models.PlatformInstagram,
		Audience:    models.AudienceMillennials,
		ContentType: models.ContentMarketUpdate,
		GeneratedAt: ts,
	}
}

func TestSave_FileNameAndContents(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "content"))
	ts := time.Date(2025, 6, 2, 14, 30, 5, 0, time.UTC)

	path, err := s.Save(sample(ts))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	wantName := "instagram_millennials_market_update_20250602_143005.json"
	if filepath.Base(path) != wantName {
		t.Errorf("file name = %q, want %q", filepath.Base(path), wantName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.Contains(string(data), `"platform": "instagram"`) {
		t.Errorf("saved JSON missing platform field: %s", data)
	}
}

func TestRecent_NewestFirstAndLimited(t *testing.T) {
	s := New(t.TempDir())
	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := s.Save(sample(base.Add(time.Duration(i) * time.Hour))); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
	}

	got, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !got[0].GeneratedAt.After(got[1].GeneratedAt) {
		t.Errorf("not newest first: %v then %v", got[0].GeneratedAt, got[1].GeneratedAt)
	}
}

func TestRecent_MissingDirIsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestRecent_SkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if _, err := s.Save(sample(time.Now())); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want corrupt file skipped", len(got))
	}
}

func TestCount(t *testing.T) {
	s := New(t.TempDir())
	if n, _ := s.Count(); n != 0 {
		t.Errorf("empty Count = %d", n)
	}
	s.Save(sample(time.Now()))
	s.Save(sample(time.Now().Add(time.Minute)))
	if n, _ := s.Count(); n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}
