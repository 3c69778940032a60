package core

import (
	"bytes"
	"testing"
)

func TestLoad_Smoke(t *testing.T) {
	for _, env := range []Environment{Development, Publish} {
		s := Load(env)
		if err := Validate(s); err != nil {
			t.Fatalf("%s: Validate: %v", env, err)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	want := Load(Publish)
	var buf bytes.Buffer
	if err := MarshalSettings(&buf, want); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalSettings(&buf)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := Validate(got); err != nil {
		t.Fatalf("decoded settings invalid: %v", err)
	}
	if n, ok := got.Int("pagination_size"); !ok || n != 10 {
		t.Fatalf("pagination_size = %v, %v", n, ok)
	}
	links, ok := got.Links("social")
	if !ok || len(links) != 4 || links[2].Label != "github" {
		t.Fatalf("social links not restored: %#v", got["social"])
	}
}

func TestResolveFiles_NoFiles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	s, err := ResolveFiles(Publish, t.TempDir())
	if err != nil {
		t.Fatalf("ResolveFiles: %v", err)
	}
	if s["site_url"] != "https://www.cameronmacleod.com" {
		t.Fatalf("unexpected site_url %v", s["site_url"])
	}
}
