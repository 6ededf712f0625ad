package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// dateLayout is the calendar-day format used everywhere: YYYY-MM-DD.
const dateLayout = "2006-01-02"

// currentUserID returns the authenticated user's id placed on the context by
// the auth middleware. Routes behind the middleware always have it.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
