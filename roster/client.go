/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Zopsss/meet-mission-sub000/internal"
	"github.com/Zopsss/meet-mission-sub000/internal/httpcache"
)

// Client fetches events and rosters from the MeetMission backend. Two
// cached HTTP clients cover the two freshness classes: the event list
// changes rarely, a roster keeps filling until registration closes.
type Client struct {
	httpClient1day *http.Client
	httpClient5min *http.Client
}

func NewClient(ctx context.Context) *Client {
	ret := &Client{
		httpClient1day: httpcache.NewCachedHttpClient(ctx, 24*time.Hour),
	}
	if ret.httpClient1day != http.DefaultClient {
		ret.httpClient5min = httpcache.NewCachedHttpClient(ctx, 5*time.Minute)
	} else {
		ret.httpClient5min = http.DefaultClient
	}

	return ret
}

// getJSON issues a GET with the configured User-Agent and leaves body
// decoding to the caller.
func (client *Client) getJSON(hc *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %v (new): %w", url, err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %v (do): %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unable to fetch %v: http status: %v", url,
			resp.StatusCode)
	}

	return resp, nil
}

// fetchDoc gets the HTML document at the given URL using the
// configured User-Agent.
func (client *Client) fetchDoc(hc *http.Client, url string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
