package resource

import "time"

const (
	StreamBackend  = "Backend"
	StreamFrontend = "Frontend"
	StreamQA       = "QA"
)

// CoreStreams are the delivery streams broken out on the dashboard charts.
var CoreStreams = []string{StreamBackend, StreamFrontend, StreamQA}

// Record is an employee allocation record. CountdownDays is derived from
// ResourceEndDate at read time and is never persisted.
type Record struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	AllocationPercent int        `json:"allocationPercent"`
	Billable          string     `json:"billable"`
	ContractType      string     `json:"contractType"`
	JobTitle          string     `json:"jobTitle"`
	LineManager       string     `json:"lineManager"`
	Location          string     `json:"location"`
	Notes             string     `json:"notes"`
	Project           string     `json:"project"`
	Stream            string     `json:"stream"`
	OpenAirIDs        []string   `json:"openAirIds"`
	TechSkills        []string   `json:"techSkills"`
	ResourceEndDate   *time.Time `json:"resourceEndDate"`
	CountdownDays     *int       `json:"countdownDays"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// FullName joins first and last name with a single space.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}
