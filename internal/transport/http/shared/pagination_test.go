package shared

import (
	"net/http/httptest"
	"testing"
)

func TestParsePageDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/employees", nil)
	page := ParsePage(r, 10, 100)
	if page.Skip != 0 || page.Limit != 10 {
		t.Fatalf("expected defaults, got %+v", page)
	}
}

func TestParsePageReadsSkipAndLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/employees?skip=20&limit=50", nil)
	page := ParsePage(r, 10, 100)
	if page.Skip != 20 || page.Limit != 50 {
		t.Fatalf("expected skip=20 limit=50, got %+v", page)
	}
}

func TestParsePageClampsAndIgnoresJunk(t *testing.T) {
	r := httptest.NewRequest("GET", "/employees?skip=-3&limit=5000", nil)
	page := ParsePage(r, 10, 100)
	if page.Skip != 0 {
		t.Fatalf("negative skip must fall back, got %d", page.Skip)
	}
	if page.Limit != 100 {
		t.Fatalf("limit must clamp to max, got %d", page.Limit)
	}

	r = httptest.NewRequest("GET", "/employees?skip=abc&limit=xyz", nil)
	page = ParsePage(r, 10, 100)
	if page.Skip != 0 || page.Limit != 10 {
		t.Fatalf("junk must fall back to defaults, got %+v", page)
	}
}
