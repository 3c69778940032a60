// Package cache remembers the fingerprint of every file emit has written so
// an unchanged resolved configuration does not touch the output again.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
)

type DB struct {
	// Output path -> xxhash64 of the bytes last written there
	Entries map[string]string `json:"entries"`
}

const fileName = ".sitecfgcache.json"

func defaultPath(root string) string {
	// Keep the cache under .git when the site is a repository so it
	// never ends up committed.
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "sitecfgcache.json")
	}
	return filepath.Join(root, fileName)
}

// Fingerprint returns the hex xxhash64 of b.
func Fingerprint(b []byte) string {
	return strconv.FormatUint(xxhash.Sum64(b), 16)
}

func Load(root string) (DB, error) {
	var db DB
	p := defaultPath(root)
	f, err := os.ReadFile(p)
	if err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if err := json.Unmarshal(f, &db); err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]string{}
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	p := defaultPath(root)
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(p, b, 0644)
}

// Unchanged reports whether path was last written with content b and the
// file on disk still holds exactly b.
func (db DB) Unchanged(path string, b []byte) bool {
	want := Fingerprint(b)
	if fp, ok := db.Entries[path]; !ok || fp != want {
		return false
	}
	cur, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return Fingerprint(cur) == want
}

// Record stores the fingerprint of b for path.
func (db DB) Record(path string, b []byte) {
	db.Entries[path] = Fingerprint(b)
}
