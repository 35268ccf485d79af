package handlers

import (
	"strings"

	"construction-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

func requesterOf(c echo.Context) services.Requester {
	return services.Requester{
		TraceID:  getTraceID(c),
		ClientIP: getClientIP(c),
	}
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
