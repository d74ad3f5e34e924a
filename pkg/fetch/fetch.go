// Package fetch is a small fetch()-style front end to net/http:
//
//	resp, err := fetch.Fetch(ctx, "https://api.weather.gov/points/39.7632,-101.6483", nil)
//	if err != nil {
//	    return err
//	}
//	data, err := resp.JSONMap()
//	if err != nil {
//	    return err
//	}
//	tz, err := promise.ThenTry(data, func(v jsonmap.Map) (any, error) {
//	    return v.Path("properties", "timeZone")
//	})
//
// Requests are synchronous. Transport and decode errors reach the caller as
// net/http and encoding/json produce them.
package fetch

import (
	"context"
	"sync"
)

var (
	defaultClient     *Client
	defaultClientOnce sync.Once
)

// DefaultClient returns the Client used by the package-level Fetch. It is
// built from the environment on first use; if the environment is invalid it
// falls back to NewClient with defaults.
func DefaultClient() *Client {
	defaultClientOnce.Do(func() {
		c, err := NewClientFromEnv(context.Background())
		if err != nil {
			c = NewClient()
		}
		defaultClient = c
	})
	return defaultClient
}

// Fetch issues a GET with DefaultClient.
func Fetch(ctx context.Context, url string, params *Params) (*Response, error) {
	return DefaultClient().Fetch(ctx, url, params)
}
