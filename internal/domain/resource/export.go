package resource

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExportSheet is the workbook sheet holding the exported records.
const ExportSheet = "Employees"

var exportFields = []Field{
	FieldID, FieldFirstName, FieldLastName, FieldAllocationPercent, FieldBillable,
	FieldContractType, FieldJobTitle, FieldLineManager, FieldLocation, FieldNotes,
	FieldProject, FieldStream, FieldOpenAirIDs, FieldTechSkills, FieldResourceEndDate,
}

// ExportHeaders is the header row: every record field, with the derived
// countdownDays column appended since it is not among the stored fields.
func ExportHeaders() []string {
	headers := make([]string, 0, len(exportFields)+1)
	for _, f := range exportFields {
		headers = append(headers, string(f))
	}
	return append(headers, string(FieldCountdownDays))
}

// BuildWorkbook renders records into an in-memory workbook. List fields are
// joined with ", ", dates use DD/MM/YYYY, and the countdown column carries
// the value stamped by ApplyCountdown. Callers reject empty result sets
// before getting here; an empty workbook is never produced.
func BuildWorkbook(records []Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return nil, err
	}

	headers := ExportHeaders()
	if err := f.SetSheetRow(ExportSheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := exportRow(rec)
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func exportRow(rec Record) []any {
	countdown := ""
	if rec.CountdownDays != nil {
		countdown = strconv.Itoa(*rec.CountdownDays)
	}
	return []any{
		rec.ID,
		rec.FirstName,
		rec.LastName,
		rec.AllocationPercent,
		rec.Billable,
		rec.ContractType,
		rec.JobTitle,
		rec.LineManager,
		rec.Location,
		rec.Notes,
		rec.Project,
		rec.Stream,
		strings.Join(rec.OpenAirIDs, ", "),
		strings.Join(rec.TechSkills, ", "),
		FormatEndDate(rec.ResourceEndDate),
		countdown,
	}
}
