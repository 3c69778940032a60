package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitecfg/sitecfg/internal/config"
)

func TestDiff_PublishAgainstBase(t *testing.T) {
	changes := Diff(config.Load(config.Development), config.Load(config.Publish))
	kinds := map[config.Key]ChangeKind{}
	for _, c := range changes {
		kinds[c.Key] = c.Kind
	}
	assert.Equal(t, Replaced, kinds[config.OutputPath])
	assert.Equal(t, Replaced, kinds[config.SiteURL])
	assert.Equal(t, Replaced, kinds[config.FeedAllAtom])
	assert.Equal(t, Added, kinds[config.RelativeURLs])
	assert.Equal(t, Unchanged, kinds[config.PaginationSize])
	assert.Equal(t, Unchanged, kinds[config.ContentPath], "same value re-declared")
	for _, c := range changes {
		assert.NotEqual(t, Removed, c.Kind, "%s removed", c.Key)
	}
}

func TestDiff_Removed(t *testing.T) {
	changes := Diff(config.Settings{config.Theme: "a"}, config.Settings{})
	assert.Equal(t, []Change{{Key: config.Theme, Kind: Removed, Old: "a"}}, changes)
}

func TestPrintDiff(t *testing.T) {
	changes := []Change{
		{Key: config.FeedAllAtom, Kind: Replaced, Old: nil, New: "feeds/all.atom.xml"},
		{Key: config.RelativeURLs, Kind: Added, New: false},
		{Key: config.Theme, Kind: Unchanged, Old: "hyde", New: "hyde"},
	}
	var buf bytes.Buffer
	PrintDiff(&buf, changes, DiffOptions{NoColor: true})
	assert.Equal(t, "~ feed_all_atom: (disabled) -> feeds/all.atom.xml\n+ relative_urls: false\n", buf.String())

	buf.Reset()
	PrintDiff(&buf, changes, DiffOptions{NoColor: true, ShowUnchanged: true})
	assert.Contains(t, buf.String(), "  theme: hyde\n")
}

func TestPrintDiff_NoDifferences(t *testing.T) {
	var buf bytes.Buffer
	PrintDiff(&buf, Diff(config.Base(), config.Base()), DiffOptions{NoColor: true})
	assert.Equal(t, "No differences\n", buf.String())
}

func TestMatchKeys(t *testing.T) {
	s := config.Load(config.Publish)
	got, err := MatchKeys(s, []string{"feed_*", "*_url"})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []config.Key{
		config.FeedAllAtom, config.PageURL, config.ArticleURL, config.SiteURL,
	}, got.Keys())

	all, err := MatchKeys(s, nil)
	assert.NoError(t, err)
	assert.Equal(t, s, all)

	_, err = MatchKeys(s, []string{"[unclosed"})
	assert.Error(t, err)
}

func TestHighlight(t *testing.T) {
	plain := "theme: hyde\n"
	assert.Equal(t, plain, Highlight(plain, FormatTable))
	out := Highlight(plain, FormatYAML)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "hyde")
}
