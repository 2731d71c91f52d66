package env

import "testing"

func TestGetFallsBackOnBlank(t *testing.T) {
	t.Setenv("APPLESTORE_TEST_VALUE", "  ")
	if got := Get("APPLESTORE_TEST_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}
	t.Setenv("APPLESTORE_TEST_VALUE", "set")
	if got := Get("APPLESTORE_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("expected set value, got %q", got)
	}
}

func TestFirstOfPrefersEarlierKeys(t *testing.T) {
	t.Setenv("APPLESTORE_TEST_A", "")
	t.Setenv("APPLESTORE_TEST_B", "b")
	t.Setenv("APPLESTORE_TEST_C", "c")
	if got := FirstOf("none", "APPLESTORE_TEST_A", "APPLESTORE_TEST_B", "APPLESTORE_TEST_C"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := FirstOf("none", "APPLESTORE_TEST_MISSING"); got != "none" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
