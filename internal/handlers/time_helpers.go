package handlers

import "time"

// Dates arrive as plain YYYY-MM-DD and are interpreted on the server's
// local clock; the scheduling policy knows no other timezone.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
