package resource

import (
	"testing"
	"time"
)

func TestBuildWorkbookLayout(t *testing.T) {
	end := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
	days := 117
	records := []Record{
		{
			ID:                "7e6b5a6e-3f48-4f62-9c1b-0a4c1d2e3f40",
			FirstName:         "Ada",
			LastName:          "Lovelace",
			AllocationPercent: 85,
			Project:           "Engine",
			Stream:            StreamBackend,
			OpenAirIDs:        []string{"OA-1", "OA-2"},
			TechSkills:        []string{"Go", "SQL"},
			ResourceEndDate:   &end,
			CountdownDays:     &days,
		},
		{
			FirstName: "Alan",
			LastName:  "Turing",
		},
	}

	f, err := BuildWorkbook(records)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ExportSheet)
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 data rows, got %d", len(rows))
	}

	headers := rows[0]
	if headers[0] != "id" {
		t.Fatalf("expected id header first, got %q", headers[0])
	}
	if headers[len(headers)-1] != "countdownDays" {
		t.Fatalf("expected countdownDays appended last, got %q", headers[len(headers)-1])
	}

	byHeader := func(row []string, name string) string {
		for i, h := range headers {
			if h == name && i < len(row) {
				return row[i]
			}
		}
		return ""
	}

	first := rows[1]
	if byHeader(first, "openAirIds") != "OA-1, OA-2" {
		t.Fatalf("list fields must join with comma-space, got %q", byHeader(first, "openAirIds"))
	}
	if byHeader(first, "techSkills") != "Go, SQL" {
		t.Fatalf("list fields must join with comma-space, got %q", byHeader(first, "techSkills"))
	}
	if byHeader(first, "resourceEndDate") != "25/12/2026" {
		t.Fatalf("dates must render DD/MM/YYYY, got %q", byHeader(first, "resourceEndDate"))
	}
	if byHeader(first, "countdownDays") != "117" {
		t.Fatalf("countdown column must carry the stamped value, got %q", byHeader(first, "countdownDays"))
	}
	if byHeader(first, "id") != "7e6b5a6e-3f48-4f62-9c1b-0a4c1d2e3f40" {
		t.Fatalf("identity must be stringified, got %q", byHeader(first, "id"))
	}

	second := rows[2]
	if byHeader(second, "resourceEndDate") != "" || byHeader(second, "countdownDays") != "" {
		t.Fatal("missing end date must leave date and countdown cells empty")
	}
}
