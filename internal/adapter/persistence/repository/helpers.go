package repository

import (
	"os"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Timestamps are stored as RFC3339Nano strings so items stay readable in the
// console and sortable lexicographically.

func timeToItem(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromItem(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func timePtrToItem(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToItem(*t)
}

func timePtrFromItem(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
