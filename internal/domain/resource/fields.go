package resource

import "strings"

// Field is a canonical record attribute identifier. External payloads use a
// mix of camelCase keys and legacy spreadsheet headers ("First name",
// "% Allocation"); both are resolved here, once, at the boundary. Raw
// external key strings never reach the query or store layers.
type Field string

const (
	FieldID                Field = "id"
	FieldFirstName         Field = "firstName"
	FieldLastName          Field = "lastName"
	FieldAllocationPercent Field = "allocationPercent"
	FieldBillable          Field = "billable"
	FieldContractType      Field = "contractType"
	FieldJobTitle          Field = "jobTitle"
	FieldLineManager       Field = "lineManager"
	FieldLocation          Field = "location"
	FieldNotes             Field = "notes"
	FieldProject           Field = "project"
	FieldStream            Field = "stream"
	FieldOpenAirIDs        Field = "openAirIds"
	FieldTechSkills        Field = "techSkills"
	FieldResourceEndDate   Field = "resourceEndDate"
	FieldCountdownDays     Field = "countdownDays"
)

var fieldAliases = map[string]Field{
	"id":  FieldID,
	"_id": FieldID,

	"firstname":  FieldFirstName,
	"first name": FieldFirstName,
	"lastname":   FieldLastName,
	"last name":  FieldLastName,

	"allocationpercent": FieldAllocationPercent,
	"% allocation":      FieldAllocationPercent,
	"allocation":        FieldAllocationPercent,

	"billable": FieldBillable,

	"contracttype":    FieldContractType,
	"contract / perm": FieldContractType,

	"jobtitle":  FieldJobTitle,
	"job title": FieldJobTitle,

	"linemanager":  FieldLineManager,
	"line manager": FieldLineManager,

	"location": FieldLocation,
	"notes":    FieldNotes,
	"project":  FieldProject,
	"stream":   FieldStream,

	"openairids":  FieldOpenAirIDs,
	"open air id": FieldOpenAirIDs,

	"techskills":  FieldTechSkills,
	"tech skills": FieldTechSkills,

	"resourceenddate":   FieldResourceEndDate,
	"resource end date": FieldResourceEndDate,

	"countdowndays": FieldCountdownDays,
	"countdown":     FieldCountdownDays,
}

// ResolveField maps an external key to its canonical field. Matching is
// case-insensitive and tolerant of surrounding whitespace.
func ResolveField(key string) (Field, bool) {
	f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(key))]
	return f, ok
}

var sortColumns = map[Field]string{
	FieldFirstName:         "first_name",
	FieldLastName:          "last_name",
	FieldAllocationPercent: "allocation_percent",
	FieldBillable:          "billable",
	FieldContractType:      "contract_type",
	FieldJobTitle:          "job_title",
	FieldLineManager:       "line_manager",
	FieldLocation:          "location",
	FieldProject:           "project",
	FieldStream:            "stream",
	FieldResourceEndDate:   "resource_end_date",
}

// SortColumn resolves a user-supplied sortBy value to a whitelisted column.
// Anything unresolvable falls back to first_name.
func SortColumn(key string) string {
	if f, ok := ResolveField(key); ok {
		if col, ok := sortColumns[f]; ok {
			return col
		}
	}
	return "first_name"
}
