package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeQuery trims a free-text location query. A query is either a place
// name or a "lat, lon" pair; no other validation is applied.
func NormalizeQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return q, nil
}

// CoordinatesQuery turns a geolocation reading into the "lat, lon" query the
// dashboard sends upstream. Unusable readings count as a denied geolocation.
func CoordinatesQuery(lat, lon float64) (string, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return "", fmt.Errorf("%w: coordinates are not finite", ErrGeolocationDenied)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return "", fmt.Errorf("%w: coordinates out of range (%g, %g)", ErrGeolocationDenied, lat, lon)
	}
	return strconv.FormatFloat(lat, 'f', -1, 64) + ", " + strconv.FormatFloat(lon, 'f', -1, 64), nil
}
