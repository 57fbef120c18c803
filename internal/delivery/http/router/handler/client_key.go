package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// clientKey derives the rate-limit identity of a request. Proxy headers take
// precedence since the service normally runs behind a CDN; requests without
// either header all share the "unknown" bucket.
func clientKey(c echo.Context) string {
	if ip := c.Request().Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}

	if forwarded := c.Request().Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	return "unknown"
}
