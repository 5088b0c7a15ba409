package weather

import "context"

// GenerateRequest is a single prompt for a generative model.
type GenerateRequest struct {
	Prompt      string
	Temperature float32

	// LiveSearch asks the backend to ground the answer in live web results.
	// Backends cannot combine this with a response schema.
	LiveSearch bool
}

// Generator abstracts a generative-AI backend (e.g. Gemini, OpenAI).
type Generator interface {
	Name() string
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Fetcher turns a location query into a validated forecast.
type Fetcher interface {
	FetchForecast(ctx context.Context, query string) (Forecast, error)
}
