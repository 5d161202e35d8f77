package templates

import (
	"net/url"
	"strconv"
	"strings"
)

// PageHeading holds header metadata for pages.
type PageHeading struct {
	// Title is the page heading.
	Title string
	// Breadcrumbs renders a path trail for the page.
	Breadcrumbs []Breadcrumb
}

// Breadcrumb represents a single breadcrumb item.
type Breadcrumb struct {
	// Label is the visible label.
	Label string
	// URL is the optional navigation target.
	URL string
}

// PaginationView drives the shared pagination bar.
type PaginationView struct {
	// BaseURL carries the active filter params but no page param.
	BaseURL string
	// Pages is the clamped window of page buttons.
	Pages []int
	// Current is the 1-based active page.
	Current int
	// TotalPages is the page count over the full record set.
	TotalPages int
	// HasPrevious enables the Previous control.
	HasPrevious bool
	// HasNext enables the Next control.
	HasNext bool
	// Summary is the localized "Page x of y" line.
	Summary string
}

// PageURL returns the pagination target for one page number.
func (p PaginationView) PageURL(page int) string {
	return AppendQueryParam(p.BaseURL, "page", strconv.Itoa(page))
}

// pageButtonClass marks the active page button.
func pageButtonClass(page, current int) string {
	if page == current {
		return "btn btn-page current"
	}
	return "btn btn-page"
}

func formatInt(value int) string {
	return strconv.Itoa(value)
}

// navLinkClass marks the active navigation link.
func navLinkClass(currentPath, href string) string {
	if currentPath == href || strings.HasPrefix(currentPath, href+"/") {
		return "nav-link active"
	}
	return "nav-link"
}

// AppendQueryParam appends a single query parameter to a URL.
func AppendQueryParam(baseURL string, key string, value string) string {
	encodedKey := url.QueryEscape(key)
	encodedValue := url.QueryEscape(value)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + encodedKey + "=" + encodedValue
	}
	return baseURL + "?" + encodedKey + "=" + encodedValue
}
