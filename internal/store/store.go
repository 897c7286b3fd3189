package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"socialagent/internal/models"
)

// Store persists generated content as one JSON file per post under a single
// directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is created on first Save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the post to <dir>/<platform>_<audience>_<type>_<timestamp>.json
// and returns the path written.
func (s *Store) Save(content models.GeneratedContent) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("store: create dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s_%s.json",
		content.Platform, content.Audience, content.ContentType,
		content.GeneratedAt.Format("20060102_150405"))
	path := filepath.Join(s.dir, name)

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return "", fmt.Errorf("store: marshal content: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("store: write %s: %w", name, err)
	}
	return path, nil
}

// Recent returns up to n saved posts, newest first. A missing directory is an
// empty history, not an error. Files that fail to decode are skipped.
func (s *Store) Recent(n int) ([]models.GeneratedContent, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read dir: %w", err)
	}

	var out []models.GeneratedContent
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var content models.GeneratedContent
		if err := json.Unmarshal(data, &content); err != nil {
			continue
		}
		out = append(out, content)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].GeneratedAt.After(out[j].GeneratedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Count returns the number of saved posts.
func (s *Store) Count() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("store: read dir: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			count++
		}
	}
	return count, nil
}
