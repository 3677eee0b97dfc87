// Package fetch retrieves remote JSON-stat documents over HTTP.
//
// The codec itself never performs I/O; anything that reads a URL goes through
// the Fetcher interface, and Client is its bundled HTTP implementation.
// Requests are independent, stateless and retryless: any retry or backoff
// policy belongs to the caller or to a custom Fetcher.
//
// Failures are typed so callers can tell a bad URL from a bad server from a
// bad network:
//
//	doc, err := client.Fetch(ctx, url)
//	var httpErr *fetch.HTTPError
//	if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
//	    ...
//	}
//
// A structured log sink is injected per client rather than taken from process
// globals; the default sink discards everything.
package fetch
