package templates

import (
	"strconv"
	"strings"
)

// SiteMetadata describes the site for the header and SEO tags.
type SiteMetadata struct {
	Title       string
	Description string
	Author      string
}

// MetaTag is an extra <meta> element. Exactly one of Name or Property is set.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	Site        SiteMetadata
	Title       string
	Description string
	Meta        []MetaTag
	Year        int
}

// DocumentTitle returns "<page> | <site>", or the site title alone.
func DocumentTitle(page PageContext) string {
	title := strings.TrimSpace(page.Title)
	site := strings.TrimSpace(page.Site.Title)
	switch {
	case title == "":
		return site
	case site == "":
		return title
	default:
		return title + " | " + site
	}
}

// MetaTags returns the description, Open Graph and Twitter tags for page,
// followed by page.Meta.
func MetaTags(page PageContext) []MetaTag {
	description := strings.TrimSpace(page.Description)
	if description == "" {
		description = page.Site.Description
	}
	tags := []MetaTag{
		{Name: "description", Content: description},
		{Property: "og:title", Content: page.Title},
		{Property: "og:description", Content: description},
		{Property: "og:type", Content: "website"},
		{Name: "twitter:card", Content: "summary"},
		{Name: "twitter:creator", Content: page.Site.Author},
		{Name: "twitter:title", Content: page.Title},
		{Name: "twitter:description", Content: description},
	}
	return append(tags, page.Meta...)
}

func documentLang(page PageContext) string {
	if lang := strings.TrimSpace(page.Lang); lang != "" {
		return lang
	}
	return "en"
}

func siteAuthor(page PageContext) string {
	return strings.TrimSpace(page.Site.Author)
}

// yearText keeps years out of locale number grouping.
func yearText(year int) string {
	return strconv.Itoa(year)
}
