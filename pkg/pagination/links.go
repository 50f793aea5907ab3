package pagination

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Links is the set of navigation URLs embedded in a collection response.
// Prev and Next are only present when a previous or next page exists.
type Links struct {
	Self  string `json:"self"`
	First string `json:"first"`
	Last  string `json:"last"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// BuildLinks computes the navigation links for one page of a collection.
// Query parameters other than limit and offset (e.g. ProjectID, UserID) are
// carried over unchanged into every link. The total comes from the backing
// store's reported count for the filter in effect; it is never computed here.
func BuildLinks(base *url.URL, total int, w Window) Links {
	if w.Limit <= 0 {
		w.Limit = DefaultLimit
	}

	links := Links{
		Self:  pageURL(base, w.Limit, w.Offset),
		First: pageURL(base, w.Limit, 0),
	}

	// Offset of the final non-empty page under this limit.
	lastOffset := 0
	if total > 0 {
		lastOffset = ((total - 1) / w.Limit) * w.Limit
	}
	links.Last = pageURL(base, w.Limit, lastOffset)

	if w.Offset > 0 {
		prevOffset := w.Offset - w.Limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		links.Prev = pageURL(base, w.Limit, prevOffset)
	}

	if w.Offset+w.Limit < total {
		links.Next = pageURL(base, w.Limit, w.Offset+w.Limit)
	}

	return links
}

// RequestURL reconstructs the absolute URL of the current request so links
// can be built from it.
func RequestURL(c echo.Context) *url.URL {
	u := *c.Request().URL
	u.Scheme = c.Scheme()
	u.Host = c.Request().Host
	return &u
}

func pageURL(base *url.URL, limit, offset int) string {
	u := *base
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()
	return u.String()
}
