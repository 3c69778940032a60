package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	// initial load should return empty DB and error
	db, _ := Load(dir)
	if db.Entries == nil {
		t.Fatalf("expected entries map initialized")
	}
	db.Entries["sitecfg.py"] = "deadbeef"
	if err := Save(dir, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".sitecfgcache.json")); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	db2, err := Load(dir)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if got := db2.Entries["sitecfg.py"]; got != "deadbeef" {
		t.Fatalf("unexpected entry: %q", got)
	}
}

func TestSave_PrefersGitDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Save(dir, DB{Entries: map[string]string{}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git", "sitecfgcache.json")); err != nil {
		t.Fatalf("expected cache under .git: %v", err)
	}
}

func TestUnchanged(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "sitecfg.py")
	body := []byte("AUTHOR = 'x'\n")

	db := DB{Entries: map[string]string{}}
	if db.Unchanged(out, body) {
		t.Fatal("unknown path reported unchanged")
	}
	db.Record(out, body)
	if db.Unchanged(out, body) {
		t.Fatal("missing file reported unchanged")
	}
	if err := os.WriteFile(out, body, 0o644); err != nil {
		t.Fatal(err)
	}
	if !db.Unchanged(out, body) {
		t.Fatal("expected unchanged after record and write")
	}
	if db.Unchanged(out, []byte("AUTHOR = 'y'\n")) {
		t.Fatal("different content reported unchanged")
	}
}

func TestUnchanged_FileEditedOnDisk(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "publishconf.py")
	body := []byte("SITEURL = 'https://example.com'\n")
	if err := os.WriteFile(out, body, 0o644); err != nil {
		t.Fatal(err)
	}
	db := DB{Entries: map[string]string{}}
	db.Record(out, body)

	if err := os.WriteFile(out, []byte("SITEURL = 'edited'\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if db.Unchanged(out, body) {
		t.Fatal("file edited after the last write reported unchanged")
	}
}

func TestFingerprint_Stable(t *testing.T) {
	a := Fingerprint([]byte("same"))
	b := Fingerprint([]byte("same"))
	if a != b || a == "" {
		t.Fatalf("fingerprint not stable: %q %q", a, b)
	}
	if a == Fingerprint([]byte("other")) {
		t.Fatal("fingerprint collision on trivial input")
	}
}
