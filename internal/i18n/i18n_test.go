package i18n_test

import (
	"testing"

	"handmadehaven/internal/i18n"
)

func TestLookupAndFallback(t *testing.T) {
	if got := i18n.T(i18n.HI, "nav.home"); got != "होम" {
		t.Fatalf("hindi lookup: %q", got)
	}
	if got := i18n.T(i18n.EN, "nav.home"); got != "Home" {
		t.Fatalf("english lookup: %q", got)
	}
	// Unknown keys pass through so a typo never blanks the page.
	if got := i18n.T(i18n.HI, "nav.doesNotExist"); got != "nav.doesNotExist" {
		t.Fatalf("missing key fallback: %q", got)
	}
}

func TestParseDefaultsToEnglish(t *testing.T) {
	if i18n.Parse("hi") != i18n.HI {
		t.Fatal("hi should parse")
	}
	if i18n.Parse("fr") != i18n.EN {
		t.Fatal("unknown languages default to en")
	}
	if i18n.Parse("") != i18n.EN {
		t.Fatal("absent cookie defaults to en")
	}
}

func TestStringsResolvesWholeTable(t *testing.T) {
	m := i18n.Strings(i18n.HI)
	if m["filter.newest"] != "नवीनतम" {
		t.Fatalf("resolved table wrong: %q", m["filter.newest"])
	}
	if len(m) == 0 {
		t.Fatal("empty table")
	}
}
