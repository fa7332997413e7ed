package shared

import "testing"

func TestMatchesAnyIsCaseInsensitive(t *testing.T) {
	if !MatchesAny("fatima", "Fatima Ahmed Ali", "0551234567", "") {
		t.Fatal("expected lowercase query to match mixed-case name")
	}
	if !MatchesAny("AHMED", "Fatima Ahmed Ali") {
		t.Fatal("expected uppercase query to match")
	}
}

func TestMatchesAnyChecksEveryField(t *testing.T) {
	if !MatchesAny("0551", "Fatima Ahmed Ali", "0551234567", "fatima@example.com") {
		t.Fatal("expected phone field to match")
	}
	if !MatchesAny("example.com", "Fatima Ahmed Ali", "0551234567", "fatima@example.com") {
		t.Fatal("expected email field to match")
	}
	if MatchesAny("nomatch", "Fatima Ahmed Ali", "0551234567", "fatima@example.com") {
		t.Fatal("expected query with no matching field to fail")
	}
}

func TestMatchesAnyEmptyQueryMatchesAll(t *testing.T) {
	if !MatchesAny("", "anything") {
		t.Fatal("expected empty query to match")
	}
	if !MatchesAny("   ", "anything") {
		t.Fatal("expected whitespace query to match")
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-04-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != 4 || parsed.Day() != 1 {
		t.Fatalf("unexpected date: %v", parsed)
	}

	if _, err := ParseDate("01/04/2025"); err == nil {
		t.Fatal("expected unsupported format to fail")
	}

	zero, err := ParseDate("")
	if err != nil {
		t.Fatalf("unexpected error for empty value: %v", err)
	}
	if !zero.IsZero() {
		t.Fatalf("expected zero time for empty value, got %v", zero)
	}
}
