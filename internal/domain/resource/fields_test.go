package resource

import "testing"

func TestResolveFieldAcceptsCanonicalAndLegacyKeys(t *testing.T) {
	cases := map[string]Field{
		"firstName":         FieldFirstName,
		"First name":        FieldFirstName,
		"% Allocation":      FieldAllocationPercent,
		"allocationPercent": FieldAllocationPercent,
		"Contract / Perm":   FieldContractType,
		"contractType":      FieldContractType,
		"Open Air ID":       FieldOpenAirIDs,
		"Tech Skills":       FieldTechSkills,
		"Resource End date": FieldResourceEndDate,
		"resourceEndDate":   FieldResourceEndDate,
		"Countdown":         FieldCountdownDays,
		"_id":               FieldID,
		"  Project  ":      FieldProject,
		"STREAM":            FieldStream,
	}
	for key, want := range cases {
		got, ok := ResolveField(key)
		if !ok || got != want {
			t.Fatalf("ResolveField(%q) = %q, %v; want %q", key, got, ok, want)
		}
	}
}

func TestResolveFieldRejectsUnknownKeys(t *testing.T) {
	if _, ok := ResolveField("salary"); ok {
		t.Fatal("unknown keys must not resolve")
	}
}

func TestSortColumnWhitelist(t *testing.T) {
	if got := SortColumn("First name"); got != "first_name" {
		t.Fatalf("expected first_name, got %q", got)
	}
	if got := SortColumn("resourceEndDate"); got != "resource_end_date" {
		t.Fatalf("expected resource_end_date, got %q", got)
	}
	// Derived and unknown fields fall back rather than reaching the query.
	if got := SortColumn("countdownDays"); got != "first_name" {
		t.Fatalf("expected fallback for derived field, got %q", got)
	}
	if got := SortColumn("id; DROP TABLE resources"); got != "first_name" {
		t.Fatalf("expected fallback for junk input, got %q", got)
	}
}
