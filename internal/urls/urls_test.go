package urls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitecfg/sitecfg/internal/config"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Crème Brûlée!", "creme-brulee"},
		{"Go 1.22: what's new?", "go-1-22-what-s-new"},
		{"---", ""},
		{"Ünïcödé & friends", "unicode-friends"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestExpand(t *testing.T) {
	got, err := Expand("blog/{slug}.html", "first-post")
	require.NoError(t, err)
	assert.Equal(t, "blog/first-post.html", got)

	_, err = Expand("blog/index.html", "first-post")
	assert.Error(t, err)
}

func TestResolver_Development(t *testing.T) {
	r := NewResolver(config.Load(config.Development))

	u, err := r.URL(Article, "first-post")
	require.NoError(t, err)
	assert.Equal(t, "/blog/first-post", u)

	p, err := r.SaveAs(Article, "first-post")
	require.NoError(t, err)
	assert.Equal(t, "blog/first-post.html", p)

	u, err = r.URL(Page, "about")
	require.NoError(t, err)
	assert.Equal(t, "/about.html", u)
}

func TestResolver_Publish(t *testing.T) {
	r := NewResolver(config.Load(config.Publish))
	u, err := r.URL(Article, "first-post")
	require.NoError(t, err)
	assert.Equal(t, "https://www.cameronmacleod.com/blog/first-post", u)
}

func TestResolver_RelativeURLs(t *testing.T) {
	s := config.Resolve(config.Load(config.Publish), config.Settings{config.RelativeURLs: true})
	u, err := NewResolver(s).URL(Page, "cv")
	require.NoError(t, err)
	assert.Equal(t, "cv.html", u)
}

func TestResolver_MissingTemplate(t *testing.T) {
	s := config.Base()
	delete(s, config.PageURL)
	_, err := NewResolver(s).URL(Page, "x")
	assert.Error(t, err)
}

func TestFeedURL(t *testing.T) {
	assert.Equal(t, "", FeedURL(config.Load(config.Development)))
	assert.Equal(t, "https://www.cameronmacleod.com/feeds/all.atom.xml", FeedURL(config.Load(config.Publish)))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Article")
	require.NoError(t, err)
	assert.Equal(t, Article, k)
	_, err = ParseKind("draft")
	assert.Error(t, err)
}
