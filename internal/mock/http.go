// Package mock contains hand written fakes shared by adapter tests.
package mock

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// HTTPDoer fakes http.Client.
//
// Responses are served from Statuses, Bodies and Headers in round robin order,
// unless DoFunc is set. Every served request is recorded.
type HTTPDoer struct {
	Statuses []int
	Bodies   [][]byte
	Headers  []http.Header

	DoFunc func(*http.Request) (*http.Response, error)

	mu       sync.Mutex
	requests []*http.Request
	i        int
}

// Do fakes executing http request.
func (d *HTTPDoer) Do(r *http.Request) (*http.Response, error) {
	d.mu.Lock()
	i := d.i
	d.i++
	d.requests = append(d.requests, r)
	d.mu.Unlock()

	if d.DoFunc != nil {
		return d.DoFunc(r)
	}

	status := http.StatusOK
	if len(d.Statuses) > 0 {
		status = d.Statuses[i%len(d.Statuses)]
	}
	var data []byte
	if len(d.Bodies) > 0 {
		data = d.Bodies[i%len(d.Bodies)]
	}
	header := http.Header{"Content-Type": []string{"application/json"}}
	if len(d.Headers) > 0 {
		for k, v := range d.Headers[i%len(d.Headers)] {
			header[k] = v
		}
	}

	return &http.Response{
		Status:        http.StatusText(status),
		StatusCode:    status,
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: int64(len(data)),
		Header:        header,
		Request:       r,
	}, nil
}

// Requests returns all requests served so far.
func (d *HTTPDoer) Requests() []*http.Request {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*http.Request, len(d.requests))
	copy(out, d.requests)
	return out
}
