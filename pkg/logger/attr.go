package logger

import (
	"fmt"
	"log/slog"
	"time"
)

// Error records err under the key "error", or nothing when err is nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
// If id is nil, it returns an empty Attr.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// AttemptID records the authentication attempt identifier.
func AttemptID(id string) slog.Attr {
	return slog.String("attempt_id", id)
}

// Provider records the identity provider name.
func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

// Outcome records the terminal outcome of an attempt.
func Outcome(o fmt.Stringer) slog.Attr {
	return slog.String("outcome", o.String())
}

// Duration records d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Step records the flow step an attempt ended at under the key "step".
func Step(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("step", name)
}
