package weather

import (
	"context"
	"fmt"
	"log"
)

// Client acquires forecasts from a generative backend with live search.
type Client struct {
	gen Generator
}

// NewClient creates a new Client.
func NewClient(gen Generator) *Client {
	return &Client{gen: gen}
}

// FetchForecast issues exactly one generator call for the query and returns a
// fully validated Forecast. Every failure is an *AcquisitionError; a partial
// forecast is never returned.
func (c *Client) FetchForecast(ctx context.Context, query string) (Forecast, error) {
	q, err := NormalizeQuery(query)
	if err != nil {
		return Forecast{}, c.fail(query, err)
	}
	if c.gen == nil {
		return Forecast{}, c.fail(q, fmt.Errorf("no generator configured"))
	}

	log.Printf("DEBUG: fetching forecast for %q via %s", q, c.gen.Name())

	text, err := c.gen.Generate(ctx, GenerateRequest{
		Prompt:      BuildPrompt(q),
		Temperature: SamplingTemperature,
		LiveSearch:  true,
	})
	if err != nil {
		return Forecast{}, c.fail(q, fmt.Errorf("%s generate: %w", c.gen.Name(), err))
	}

	text = StripCodeFence(text)
	if text == "" {
		return Forecast{}, c.fail(q, ErrNoData)
	}

	f, err := ParseForecast(text)
	if err != nil {
		return Forecast{}, c.fail(q, err)
	}
	return f, nil
}

func (c *Client) fail(query string, err error) error {
	ae := newAcquisitionError(query, err)
	log.Printf("ERROR: forecast acquisition failed (ref %s): %v", ae.Ref, ae)
	return ae
}
