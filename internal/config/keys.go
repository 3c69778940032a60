package config

import "sort"

// Key names a setting in the fixed vocabulary understood by the generator.
type Key string

const (
	Author             Key = "author"
	SiteName           Key = "site_name"
	SiteURL            Key = "site_url"
	ContentPath        Key = "path"
	OutputPath         Key = "output_path"
	Theme              Key = "theme"
	ProfileImage       Key = "profile_image"
	Timezone           Key = "timezone"
	DefaultLanguage    Key = "default_language"
	PaginationSize     Key = "pagination_size"
	GoogleAnalyticsID  Key = "google_analytics_id"
	DisqusSitename     Key = "disqus_sitename"
	FeedAllAtom        Key = "feed_all_atom"
	CategoryFeed       Key = "category_feed"
	TranslationFeed    Key = "translation_feed"
	AuthorFeedAtom     Key = "author_feed_atom"
	AuthorFeedRSS      Key = "author_feed_rss"
	PageURL            Key = "page_url"
	PageSaveAs         Key = "page_save_as"
	ArticleURL         Key = "article_url"
	ArticleSaveAs      Key = "article_save_as"
	Links              Key = "links"
	Social             Key = "social"
	PluginPaths        Key = "plugin_paths"
	Plugins            Key = "plugins"
	MarkdownExtensions Key = "markdown_extensions"
	RelativeURLs       Key = "relative_urls"
)

// Kind is the value shape a key accepts.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindFeed     // string path or nil (disabled)
	KindTemplate // string containing {slug}
	KindTimezone // IANA zone id
	KindLinks
	KindStrings
	KindExtensions
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindFeed:
		return "feed path or null"
	case KindTemplate:
		return "URL template"
	case KindTimezone:
		return "timezone"
	case KindLinks:
		return "list of (label, url)"
	case KindStrings:
		return "list of strings"
	case KindExtensions:
		return "extension options mapping"
	default:
		return "unknown"
	}
}

// KeySpec describes one vocabulary entry.
type KeySpec struct {
	Key      Key
	Kind     Kind
	Required bool
	Doc      string
}

var vocabulary = []KeySpec{
	{Author, KindString, true, "author name"},
	{SiteName, KindString, true, "site title"},
	{SiteURL, KindString, true, "absolute site URL; empty in development"},
	{ContentPath, KindString, true, "content source directory"},
	{OutputPath, KindString, true, "destination directory for generated output"},
	{Theme, KindString, true, "theme selector"},
	{ProfileImage, KindString, false, "theme profile image"},
	{Timezone, KindTimezone, true, "IANA timezone id"},
	{DefaultLanguage, KindString, true, "content language tag"},
	{PaginationSize, KindInt, true, "items per paginated page"},
	{GoogleAnalyticsID, KindString, false, "analytics snippet id"},
	{DisqusSitename, KindString, false, "comments site name"},
	{FeedAllAtom, KindFeed, true, "combined Atom feed path"},
	{CategoryFeed, KindFeed, true, "per-category feed path"},
	{TranslationFeed, KindFeed, true, "translation feed path"},
	{AuthorFeedAtom, KindFeed, true, "per-author Atom feed path"},
	{AuthorFeedRSS, KindFeed, true, "per-author RSS feed path"},
	{PageURL, KindTemplate, true, "page URL template"},
	{PageSaveAs, KindTemplate, true, "page output path template"},
	{ArticleURL, KindTemplate, true, "article URL template"},
	{ArticleSaveAs, KindTemplate, true, "article output path template"},
	{Links, KindLinks, true, "blogroll links"},
	{Social, KindLinks, true, "social widget links"},
	{PluginPaths, KindStrings, false, "plugin search paths"},
	{Plugins, KindStrings, false, "plugins to load"},
	{MarkdownExtensions, KindExtensions, false, "Markdown extension options"},
	{RelativeURLs, KindBool, false, "generate document-relative URLs"},
}

var byKey = func() map[Key]KeySpec {
	m := make(map[Key]KeySpec, len(vocabulary))
	for _, s := range vocabulary {
		m[s.Key] = s
	}
	return m
}()

// Vocabulary returns every known key spec in declaration order.
func Vocabulary() []KeySpec {
	out := make([]KeySpec, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// Lookup returns the spec for k, if k is part of the vocabulary.
func Lookup(k Key) (KeySpec, bool) {
	s, ok := byKey[k]
	return s, ok
}

// Required returns the keys every resolved mapping must carry, sorted.
func Required() []Key {
	var out []Key
	for _, s := range vocabulary {
		if s.Required {
			out = append(out, s.Key)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
