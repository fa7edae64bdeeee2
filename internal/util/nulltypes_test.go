package util

import (
	"testing"
	"time"
)

func TestNullStringFromValue(t *testing.T) {
	if got := NullStringFromValue("hello"); !got.Valid || got.String != "hello" {
		t.Errorf("NullStringFromValue(%q) = %+v, want valid %q", "hello", got, "hello")
	}
	if got := NullStringFromValue(""); got.Valid {
		t.Errorf("NullStringFromValue(\"\") = %+v, want invalid", got)
	}
}

func TestNullStringFromPtr(t *testing.T) {
	s := "world"
	if got := NullStringFromPtr(&s); !got.Valid || got.String != "world" {
		t.Errorf("NullStringFromPtr(&%q) = %+v, want valid %q", s, got, s)
	}
	if got := NullStringFromPtr(nil); got.Valid {
		t.Errorf("NullStringFromPtr(nil) = %+v, want invalid", got)
	}
}

func TestNullInt64FromPtr(t *testing.T) {
	v := int64(42)
	if got := NullInt64FromPtr(&v); !got.Valid || got.Int64 != 42 {
		t.Errorf("NullInt64FromPtr(&42) = %+v, want valid 42", got)
	}
	if got := NullInt64FromPtr(nil); got.Valid {
		t.Errorf("NullInt64FromPtr(nil) = %+v, want invalid", got)
	}
}

func TestNullTimeFromPtr(t *testing.T) {
	now := time.Now()
	if got := NullTimeFromPtr(&now); !got.Valid || !got.Time.Equal(now) {
		t.Errorf("NullTimeFromPtr(&now) = %+v, want valid %v", got, now)
	}
	if got := NullTimeFromPtr(nil); got.Valid {
		t.Errorf("NullTimeFromPtr(nil) = %+v, want invalid", got)
	}
}
