package validate

import (
	"regexp"
	"strconv"
	"strings"

	"handmadehaven/internal/domain"
)

var (
	reID     = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reDigits = regexp.MustCompile(`[^0-9]`)
	reLang   = regexp.MustCompile(`^(en|hi)$`)
)

// Phone strips every non-digit character and accepts exactly 10 digits,
// returning the normalized number.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	digits := reDigits.ReplaceAllString(s, "")
	return digits, len(digits) == 10
}

// Name validates a displayable person or place name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Bio validates the free-text craft description.
func Bio(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 2000 {
		return "", false
	}
	return s, true
}

// Category accepts only members of the fixed craft category set.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, domain.IsCategory(s)
}

// ID validates a simple resource identifier (product/artisan ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Qty clamps a cart quantity into [1,50].
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Lang accepts the supported UI languages.
func Lang(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reLang.MatchString(s)
}
