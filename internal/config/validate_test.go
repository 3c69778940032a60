package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_BuiltinsPass(t *testing.T) {
	assert.NoError(t, Validate(Load(Development)))
	assert.NoError(t, Validate(Load(Publish)))
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	s := Base()
	delete(s, Theme)
	delete(s, Author)
	s[PaginationSize] = "ten"
	s[ArticleURL] = "blog/post.html"
	s[Timezone] = "Mars/Olympus"

	err := Validate(s)
	assert.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "theme: missing")
	assert.Contains(t, msg, "author: missing")
	assert.Contains(t, msg, "pagination_size: want integer")
	assert.Contains(t, msg, "article_url: template has no {slug} placeholder")
	assert.Contains(t, msg, `timezone: unknown timezone "Mars/Olympus"`)
}

func TestValidate_Values(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		value   any
		wantErr string
	}{
		{"feed disabled", FeedAllAtom, nil, ""},
		{"feed path", FeedAllAtom, "feeds/all.atom.xml", ""},
		{"feed empty", FeedAllAtom, "  ", "want feed path or null"},
		{"feed wrong type", CategoryFeed, true, "want feed path or null"},
		{"pagination zero", PaginationSize, 0, "must be positive"},
		{"relative urls bool", RelativeURLs, true, ""},
		{"relative urls string", RelativeURLs, "yes", "want boolean"},
		{"link missing url", Social, []Link{{Label: "github"}}, "entry 0 needs both label and url"},
		{"plugins", Plugins, []string{"assets"}, ""},
		{"plugins wrong", Plugins, "assets", "want list of strings"},
		{"extensions", MarkdownExtensions, map[string]map[string]any{"markdown.extensions.toc": {}}, ""},
		{"empty timezone", Timezone, "", "want timezone"},
		{"unknown key ignored", Key("custom_setting"), 42, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Base()
			s[tt.key] = tt.value
			err := Validate(s)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestRequired_Sorted(t *testing.T) {
	req := Required()
	assert.IsIncreasing(t, req)
	assert.Contains(t, req, OutputPath)
	assert.NotContains(t, req, RelativeURLs)
}
