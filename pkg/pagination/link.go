package pagination

import (
	"net/http"
	"net/url"
)

// TokenParam returns the last value bound to param in the link's query
// string, or nil when the link is absent or the parameter is not present.
// Clients that don't want to store full links can resubmit the bare token.
func TokenParam(link *string, param string) *string {
	if link == nil {
		return nil
	}

	u, err := url.Parse(*link)
	if err != nil {
		return nil
	}

	vals := u.Query()[param]
	if len(vals) == 0 {
		return nil
	}

	// last occurrence wins when the parameter is repeated
	return &vals[len(vals)-1]
}

// buildLink rebuilds the request URL with param set to value
func buildLink(req *http.Request, param, value string) string {
	u := *req.URL
	q := u.Query()
	q.Set(param, value)
	u.RawQuery = q.Encode()

	return absolute(req, &u)
}

// dropParam rebuilds the request URL with param removed,
// used for links pointing at the first page
func dropParam(req *http.Request, param string) string {
	u := *req.URL
	q := u.Query()
	q.Del(param)
	u.RawQuery = q.Encode()

	return absolute(req, &u)
}

func absolute(req *http.Request, u *url.URL) string {
	if u.Host == "" {
		u.Host = req.Host
	}
	if u.Scheme == "" {
		u.Scheme = "http"
		if req.TLS != nil {
			u.Scheme = "https"
		}
	}
	return u.String()
}
