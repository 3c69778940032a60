package config

// Base returns the development settings. Feeds are disabled and URLs are
// left relative to whatever host serves develop-output.
func Base() Settings {
	return Settings{
		Author:            "Cameron MacLeod",
		SiteName:          "Cameron MacLeod",
		SiteURL:           "",
		ContentPath:       "content",
		OutputPath:        "develop-output",
		Theme:             "pelican-hyde",
		ProfileImage:      "profile.jpg",
		Timezone:          "Europe/London",
		DefaultLanguage:   "en",
		GoogleAnalyticsID: "UA-76310908-1",

		// feed generation is usually not wanted while developing
		FeedAllAtom:     nil,
		CategoryFeed:    nil,
		TranslationFeed: nil,
		AuthorFeedAtom:  nil,
		AuthorFeedRSS:   nil,

		PageURL:       "{slug}.html",
		PageSaveAs:    "{slug}.html",
		ArticleURL:    "blog/{slug}",
		ArticleSaveAs: "blog/{slug}.html",

		Links: []Link{
			{Label: "About", URL: "/about"},
			{Label: "CV", URL: "/cv.pdf"},
			{Label: "Projects", URL: "/projects"},
		},
		Social: []Link{
			{Label: "twitter", URL: "http://twitter.com/notexactlyawe"},
			{Label: "linkedin", URL: "https://uk.linkedin.com/in/cameronjohnmacleod"},
			{Label: "github", URL: "https://github.com/notexactlyawe"},
			{Label: "flickr", URL: "https://www.flickr.com/photos/rotor132"},
		},

		PaginationSize: 10,
	}
}

// PublishOverrides returns the keys replaced for production builds.
func PublishOverrides() Settings {
	return Settings{
		ContentPath:       "content",
		OutputPath:        "notexactlyawe.github.io",
		GoogleAnalyticsID: "UA-76310908-1",
		// only the combined Atom feed
		FeedAllAtom:  "feeds/all.atom.xml",
		SiteURL:      "https://www.cameronmacleod.com",
		RelativeURLs: false,
	}
}
