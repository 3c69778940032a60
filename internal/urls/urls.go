// Package urls expands the {slug} URL templates of a resolved configuration
// into the link and output path the generator will produce.
package urls

import (
	"strings"
	"unicode"

	"github.com/samber/oops"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sitecfg/sitecfg/internal/config"
)

// Kind is the content type a template applies to.
type Kind string

const (
	Page    Kind = "page"
	Article Kind = "article"
)

// ParseKind accepts "page" or "article".
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case Page:
		return Page, nil
	case Article:
		return Article, nil
	}
	return "", oops.In("urls").Code("unknown_kind").With("kind", s).Errorf("unknown content kind %q (want page or article)", s)
}

// Slugify derives a URL-safe slug from a title: accents are folded, letters
// lowercased and every other run of characters collapsed to one dash.
func Slugify(title string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Expand substitutes slug into template.
func Expand(template, slug string) (string, error) {
	if !strings.Contains(template, config.SlugPlaceholder) {
		return "", oops.
			In("urls").
			Code("bad_template").
			With("template", template).
			Errorf("template %q has no %s placeholder", template, config.SlugPlaceholder)
	}
	return strings.ReplaceAll(template, config.SlugPlaceholder, slug), nil
}

// Resolver turns slugs into links and output paths for one resolved mapping.
type Resolver struct {
	siteURL  string
	relative bool
	url      map[Kind]string
	saveAs   map[Kind]string
}

// NewResolver reads the URL shaping keys from s.
func NewResolver(s config.Settings) *Resolver {
	siteURL, _ := s.String(config.SiteURL)
	relative, _ := s.Bool(config.RelativeURLs)
	r := &Resolver{
		siteURL:  strings.TrimRight(siteURL, "/"),
		relative: relative,
		url:      map[Kind]string{},
		saveAs:   map[Kind]string{},
	}
	r.url[Page], _ = s.String(config.PageURL)
	r.url[Article], _ = s.String(config.ArticleURL)
	r.saveAs[Page], _ = s.String(config.PageSaveAs)
	r.saveAs[Article], _ = s.String(config.ArticleSaveAs)
	return r
}

// URL returns the link to the content identified by slug. With relative
// URLs on, the template expansion is returned as-is; otherwise it is joined
// to site_url, which is empty during development and yields a root path.
func (r *Resolver) URL(kind Kind, slug string) (string, error) {
	p, err := Expand(r.url[kind], slug)
	if err != nil {
		return "", err
	}
	return r.link(p), nil
}

// SaveAs returns the output path, relative to output_path, for slug.
func (r *Resolver) SaveAs(kind Kind, slug string) (string, error) {
	return Expand(r.saveAs[kind], slug)
}

func (r *Resolver) link(p string) string {
	if r.relative {
		return p
	}
	return r.siteURL + "/" + strings.TrimLeft(p, "/")
}

// FeedURL returns the link to the combined Atom feed, or "" when disabled.
func FeedURL(s config.Settings) string {
	p, ok := s.String(config.FeedAllAtom)
	if !ok || p == "" {
		return ""
	}
	return NewResolver(s).link(p)
}
