package resource

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Input is a partially-specified record as received from the API or an
// import row. Nil pointers mean "not supplied"; the end date additionally
// distinguishes "supplied as null/unparseable" via EndDateSet.
type Input struct {
	FirstName         *string
	LastName          *string
	AllocationPercent *int
	Billable          *string
	ContractType      *string
	JobTitle          *string
	LineManager       *string
	Location          *string
	Notes             *string
	Project           *string
	Stream            *string
	OpenAirIDs        *[]string
	TechSkills        *[]string
	ResourceEndDate   *time.Time
	EndDateSet        bool
}

// DecodeInput normalizes a raw JSON object into an Input. External keys are
// resolved through the field alias table; unrecognized keys and incoming
// countdown values are dropped. Numeric allocation values arriving as
// strings or empty values coerce to integers, defaulting to 0.
func DecodeInput(raw map[string]any) Input {
	var in Input
	for key, value := range raw {
		field, ok := ResolveField(key)
		if !ok {
			continue
		}
		switch field {
		case FieldFirstName:
			in.FirstName = stringPtr(value)
		case FieldLastName:
			in.LastName = stringPtr(value)
		case FieldAllocationPercent:
			n := coerceInt(value)
			in.AllocationPercent = &n
		case FieldBillable:
			in.Billable = stringPtr(value)
		case FieldContractType:
			in.ContractType = stringPtr(value)
		case FieldJobTitle:
			in.JobTitle = stringPtr(value)
		case FieldLineManager:
			in.LineManager = stringPtr(value)
		case FieldLocation:
			in.Location = stringPtr(value)
		case FieldNotes:
			in.Notes = stringPtr(value)
		case FieldProject:
			in.Project = stringPtr(value)
		case FieldStream:
			in.Stream = stringPtr(value)
		case FieldOpenAirIDs:
			list := coerceStringList(value)
			in.OpenAirIDs = &list
		case FieldTechSkills:
			list := coerceStringList(value)
			in.TechSkills = &list
		case FieldResourceEndDate:
			in.ResourceEndDate = ParseEndDate(coerceString(value))
			in.EndDateSet = true
		case FieldID, FieldCountdownDays:
			// Identity is immutable and countdown is derived; both are
			// ignored on write.
		}
	}
	return in
}

// IsEmpty reports whether no recognized field was supplied.
func (in Input) IsEmpty() bool {
	return in.FirstName == nil && in.LastName == nil && in.AllocationPercent == nil &&
		in.Billable == nil && in.ContractType == nil && in.JobTitle == nil &&
		in.LineManager == nil && in.Location == nil && in.Notes == nil &&
		in.Project == nil && in.Stream == nil && in.OpenAirIDs == nil &&
		in.TechSkills == nil && !in.EndDateSet
}

// Apply overlays the supplied fields onto a record, leaving the rest alone.
func (in Input) Apply(rec *Record) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&rec.FirstName, in.FirstName)
	setString(&rec.LastName, in.LastName)
	setString(&rec.Billable, in.Billable)
	setString(&rec.ContractType, in.ContractType)
	setString(&rec.JobTitle, in.JobTitle)
	setString(&rec.LineManager, in.LineManager)
	setString(&rec.Location, in.Location)
	setString(&rec.Notes, in.Notes)
	setString(&rec.Project, in.Project)
	setString(&rec.Stream, in.Stream)
	if in.AllocationPercent != nil {
		rec.AllocationPercent = *in.AllocationPercent
	}
	if in.OpenAirIDs != nil {
		rec.OpenAirIDs = *in.OpenAirIDs
	}
	if in.TechSkills != nil {
		rec.TechSkills = *in.TechSkills
	}
	if in.EndDateSet {
		rec.ResourceEndDate = in.ResourceEndDate
	}
}

func stringPtr(value any) *string {
	s := coerceString(value)
	return &s
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func coerceInt(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

// coerceStringList treats a JSON array as a list, a scalar as a one-element
// list, and null/absent as empty.
func coerceStringList(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, coerceString(item))
		}
		return out
	case []string:
		return v
	default:
		return []string{coerceString(v)}
	}
}
