package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"milklog/internal/core"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// parseEntryDate parses a YYYY-MM-DD form value, defaulting to today (per
// the injected clock) when the field is empty.
func parseEntryDate(value string, now time.Time) (core.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return core.DateOf(now), nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return core.Date{}, core.ErrInvalidDate
	}
	return core.DateOf(parsed), nil
}

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
	return result
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
