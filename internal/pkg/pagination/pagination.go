package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// Request represents pagination parameters parsed from a query string
type Request struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// FromRequest parses page/limit query values. Non-numeric or non-positive
// values fall back to the defaults rather than producing an error.
func FromRequest(pageStr, limitStr string) Request {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}

	return Request{Page: page, Limit: limit}
}

// Offset returns the zero-based index of the first item on the page.
func (r Request) Offset() int {
	return (r.Page - 1) * r.Limit
}
