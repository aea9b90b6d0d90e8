package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/saadjs/apexfuel/internal/store"
)

// ErrNotReady is returned when an operation runs before Initialize has
// completed the load-then-ready handshake.
var ErrNotReady = errors.New("store has not been initialized")

const dateKeyLayout = "2006-01-02"

// DateKey formats a time as the calendar-date key used throughout the ledger.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key in the local time zone.
func ParseDateKey(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func ensureReady(st *store.Store) error {
	if !st.Ready() {
		return ErrNotReady
	}
	return nil
}

func roundGrams(v float64) int {
	return int(math.Round(v))
}
