// Package linkcheck verifies that final URLs resolve, for the broken
// link audit rule.
package linkcheck

import (
	"net/http"
	"sync"
	"time"

	"adqa/internal"

	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds each URL round trip
const DefaultTimeout = 3 * time.Second

// DefaultConcurrency bounds simultaneous checks
const DefaultConcurrency = 8

// Checker probes URLs with HEAD requests, falling back to GET when the
// server rejects HEAD. A 404 response or any transport fault marks the
// URL broken; one URL's failure never affects another's result.
type Checker struct {
	client      *http.Client
	concurrency int
	log         *internal.Logger
}

// New creates a checker with the given per-request timeout and
// concurrency bound; zero values select the defaults.
func New(timeout time.Duration, concurrency int) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Checker{
		client:      &http.Client{Timeout: timeout},
		concurrency: concurrency,
		log:         internal.DefaultLogger,
	}
}

// Broken checks each distinct URL once and returns the set that failed.
// Input duplicates are collapsed before any request is issued.
func (c *Checker) Broken(urls []string) map[string]bool {
	checked := make(map[string]bool, len(urls))
	var distinct []string
	for _, url := range urls {
		if checked[url] {
			continue
		}
		checked[url] = true
		distinct = append(distinct, url)
	}

	broken := make(map[string]bool)
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for _, url := range distinct {
		g.Go(func() error {
			if !c.alive(url) {
				mu.Lock()
				broken[url] = true
				mu.Unlock()
			}
			return nil
		})
	}
	// Workers never return errors; a failed check is a result, not a fault.
	_ = g.Wait()

	return broken
}

// alive reports whether the URL answered with anything other than 404
func (c *Checker) alive(url string) bool {
	resp, err := c.client.Head(url)
	if err != nil {
		c.log.Debug("[linkcheck] HEAD %s failed: %v", url, err)
		return false
	}
	resp.Body.Close()

	// Some servers reject HEAD outright; retry with GET before judging.
	if resp.StatusCode == http.StatusMethodNotAllowed {
		resp, err = c.client.Get(url)
		if err != nil {
			c.log.Debug("[linkcheck] GET %s failed: %v", url, err)
			return false
		}
		resp.Body.Close()
	}

	return resp.StatusCode != http.StatusNotFound
}
