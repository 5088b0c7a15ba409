package weather

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGenerator struct {
	text  string
	err   error
	calls int
	last  GenerateRequest
}

func (g *fakeGenerator) Name() string { return "fake" }

func (g *fakeGenerator) Generate(_ context.Context, req GenerateRequest) (string, error) {
	g.calls++
	g.last = req
	return g.text, g.err
}

func TestFetchForecastSuccess(t *testing.T) {
	gen := &fakeGenerator{text: "```json\n" + mustJSON(t, validPayload()) + "\n```"}
	c := NewClient(gen)

	f, err := c.FetchForecast(context.Background(), "  London ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Location.City != "London" {
		t.Fatalf("unexpected city %q", f.Location.City)
	}

	if gen.calls != 1 {
		t.Fatalf("expected exactly one generator call, got %d", gen.calls)
	}
	if !gen.last.LiveSearch {
		t.Fatal("expected live search to be enabled")
	}
	if gen.last.Temperature != SamplingTemperature {
		t.Fatalf("expected temperature %v, got %v", SamplingTemperature, gen.last.Temperature)
	}
	if !strings.Contains(gen.last.Prompt, `"London"`) {
		t.Fatal("expected prompt to carry the trimmed query verbatim")
	}
}

func TestFetchForecastFailures(t *testing.T) {
	bad := validPayload()
	delete(section(bad, "current"), "humidity")

	cases := []struct {
		name    string
		gen     *fakeGenerator
		query   string
		wantErr error
	}{
		{"service failure", &fakeGenerator{err: errors.New("connection reset")}, "Paris", nil},
		{"empty text", &fakeGenerator{text: ""}, "Paris", ErrNoData},
		{"whitespace text", &fakeGenerator{text: " \n\t "}, "Paris", ErrNoData},
		{"fence only", &fakeGenerator{text: "```json\n```"}, "Paris", ErrNoData},
		{"prose answer", &fakeGenerator{text: "Sorry, I could not find the weather."}, "Paris", nil},
		{"missing field", &fakeGenerator{text: mustJSON(t, bad)}, "Paris", nil},
		{"empty query", &fakeGenerator{text: mustJSON(t, validPayload())}, "   ", ErrEmptyQuery},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewClient(tc.gen).FetchForecast(context.Background(), tc.query)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var ae *AcquisitionError
			if !errors.As(err, &ae) {
				t.Fatalf("expected *AcquisitionError, got %T: %v", err, err)
			}
			if ae.Ref == "" {
				t.Fatal("expected a reference id on the error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if f.Location.City != "" || f.Hourly != nil || f.Daily != nil {
				t.Fatalf("expected zero forecast on failure, got %+v", f)
			}
		})
	}
}

func TestFetchForecastEmptyQuerySkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{text: "{}"}
	_, _ = NewClient(gen).FetchForecast(context.Background(), "")
	if gen.calls != 0 {
		t.Fatalf("expected no generator call for an empty query, got %d", gen.calls)
	}
}

func TestFetchForecastWrapsCause(t *testing.T) {
	cause := errors.New("quota exceeded")
	_, err := NewClient(&fakeGenerator{err: cause}).FetchForecast(context.Background(), "Oslo")
	if !errors.Is(err, cause) {
		t.Fatalf("expected underlying cause to be attached, got %v", err)
	}
	if !IsAcquisitionError(err) {
		t.Fatal("expected IsAcquisitionError to report true")
	}
}
