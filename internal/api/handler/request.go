package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/clinic-admin/internal/api/middleware"
	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

const dateLayout = "2006-01-02"

// bind decodes and validates a request body. Validation runs only when the
// Echo instance has a validator, which handler tests may leave unset.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(req)
}

func actor(c echo.Context) ports.Actor {
	return ports.ActorOf(middleware.UserFrom(c))
}

// parseTime accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseTime(field, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC 3339 or YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return t, nil
}

// parseRange reads the from/to query parameters. A date-only "to" covers the
// whole day.
func parseRange(c echo.Context) (time.Time, time.Time, error) {
	from, err := parseTime("from", c.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	raw := c.QueryParam("to")
	to, err := parseTime("to", raw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if len(raw) == len(dateLayout) {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}
