package httpapi

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/presentation"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

const (
	msgFetchFailed    = "Failed to retrieve forecast."
	msgLocationDenied = "Location access denied."
)

// ErrorHandler renders every handler error as {"error": true, "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, fetcher weather.Fetcher, board *dashboard.Dashboard) {
	v1 := app.Group("/api/v1")

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		q := forecastQuery{Q: strings.TrimSpace(c.Query("q"))}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "query parameter q is required")
		}

		f, err := fetcher.FetchForecast(c.UserContext(), q.Q)
		if err != nil {
			body := failureFor(err, board.Fallback())
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":   true,
				"message": body.Message,
				"ref":     body.Ref,
			})
		}

		return c.JSON(fiber.Map{
			"forecast": f,
			"view":     presentation.BuildView(f),
		})
	})

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(newStateResponse(board.State(), board.Fallback()))
	})

	v1.Post("/dashboard/query", func(c *fiber.Ctx) error {
		var req queryRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		req.Query = strings.TrimSpace(req.Query)
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "query is required")
		}

		id := board.Submit(req.Query)
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"requestId": id})
	})

	v1.Post("/dashboard/locate", func(c *fiber.Ctx) error {
		var req locateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "lat and lon are required unless denied")
		}

		if req.Denied {
			board.DenyLocation(req.Reason)
			return c.JSON(newStateResponse(board.State(), board.Fallback()))
		}

		id, err := board.Locate(*req.Lat, *req.Lon)
		if err != nil {
			return c.JSON(newStateResponse(board.State(), board.Fallback()))
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"requestId": id})
	})

	v1.Post("/dashboard/retry", func(c *fiber.Ctx) error {
		id := board.Retry()
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"requestId": id,
			"query":     board.Fallback(),
		})
	})
}

type forecastQuery struct {
	Q string `validate:"required"`
}

type queryRequest struct {
	Query string `json:"query" validate:"required"`
}

// locateRequest carries a browser geolocation result.
type locateRequest struct {
	Lat    *float64 `json:"lat" validate:"required_without=Denied"`
	Lon    *float64 `json:"lon" validate:"required_without=Denied"`
	Denied bool     `json:"denied"`
	Reason string   `json:"reason"`
}

// failureBody is what the user sees for a failed query. The underlying cause
// is logged server side and only referenced by Ref.
type failureBody struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Ref     string `json:"ref,omitempty"`
	Retry   string `json:"retry,omitempty"`
}

func failureFor(err error, fallback string) failureBody {
	if errors.Is(err, weather.ErrGeolocationDenied) {
		return failureBody{
			Kind:    "geolocation",
			Title:   "Location Unavailable",
			Message: msgLocationDenied,
		}
	}

	body := failureBody{
		Kind:    "acquisition",
		Title:   "Connection Lost",
		Message: msgFetchFailed,
		Retry:   fallback,
	}
	var ae *weather.AcquisitionError
	if errors.As(err, &ae) {
		body.Ref = ae.Ref
	}
	return body
}

type stateResponse struct {
	Phase     dashboard.Phase       `json:"phase"`
	RequestID uint64                `json:"requestId"`
	Query     string                `json:"query,omitempty"`
	Theme     presentation.Theme    `json:"theme"`
	Tone      presentation.TextTone `json:"tone"`
	View      *presentation.View    `json:"view,omitempty"`
	Failure   *failureBody          `json:"failure,omitempty"`
}

func newStateResponse(s dashboard.State, fallback string) stateResponse {
	resp := stateResponse{
		Phase:     s.Phase,
		RequestID: s.RequestID,
		Query:     s.Query,
		Theme:     s.Theme,
		Tone:      presentation.ToneFor(s.Theme),
	}
	switch s.Phase {
	case dashboard.PhaseSuccess:
		v := presentation.BuildView(*s.Forecast)
		resp.View = &v
	case dashboard.PhaseFailure:
		f := failureFor(s.Err, fallback)
		resp.Failure = &f
	}
	return resp
}
