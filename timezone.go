package fancyblog

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Request signals carrying the viewer's IANA timezone name, used only for
// display formatting of publish timestamps.
const (
	TimezoneHeader = "X-Timezone"
	TimezoneCookie = "tz"
)

// ResolveTimezone picks the display timezone for a request. The header
// value wins over the cookie, and anything empty or unparseable falls
// through to the next source. Resolution never fails; the final fallback
// is UTC.
func ResolveTimezone(header, cookie string) *time.Location {
	if loc := parseZone(header); loc != nil {
		return loc
	}
	if loc := parseZone(cookie); loc != nil {
		return loc
	}
	return time.UTC
}

func parseZone(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil
	}
	return loc
}

// viewerTimezone extracts the timezone signals from an inbound request.
func viewerTimezone(c echo.Context) *time.Location {
	var cookie string
	if ck, err := c.Cookie(TimezoneCookie); err == nil {
		cookie = ck.Value
	}
	return ResolveTimezone(c.Request().Header.Get(TimezoneHeader), cookie)
}
