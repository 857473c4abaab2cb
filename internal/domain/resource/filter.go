package resource

import (
	"strconv"
	"strings"
	"time"
)

const (
	AllocationPartial = "partial"
	AllocationFull    = "full"

	ExpiringAtRisk = "at-risk"
	Expiring0to30  = "0-30"
	Expiring31to60 = "31-60"
	Expiring61to90 = "61-90"
)

// AtRiskWindowDays is how far ahead of today a contract end date counts as
// at risk. Already-expired dates are always at risk.
const AtRiskWindowDays = 30

// Filter is the canonical query predicate over employee records. Every
// dimension is optional; empty or unrecognized values add no constraint,
// and the populated dimensions compose with AND.
type Filter struct {
	Project          string
	Stream           string
	ContractType     string
	AllocationStatus string
	ExpiringStatus   string
}

// Compile translates the filter into a SQL predicate anchored at today's
// date. It is total: it never fails, whatever the inputs. The returned
// clause is empty or begins with " WHERE"; args are numbered from $1 so
// callers append their own with placeholders past len(args).
func (f Filter) Compile(today time.Time) (string, []any) {
	var conds []string
	var args []any

	arg := func(value any) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Project != "" {
		conds = append(conds, "project ILIKE "+arg("%"+escapeLike(f.Project)+"%"))
	}
	if f.Stream != "" {
		conds = append(conds, "stream = "+arg(f.Stream))
	}
	if f.ContractType != "" {
		conds = append(conds, "contract_type = "+arg(f.ContractType))
	}

	switch f.AllocationStatus {
	case AllocationPartial:
		conds = append(conds, "allocation_percent < 100")
	case AllocationFull:
		conds = append(conds, "allocation_percent = 100")
	}

	day := Midnight(today)
	offset := func(days int) string {
		return arg(SQLDate(day.AddDate(0, 0, days))) + "::date"
	}
	switch f.ExpiringStatus {
	case ExpiringAtRisk:
		// No lower bound: expired contracts are at risk too.
		conds = append(conds, "resource_end_date IS NOT NULL AND resource_end_date <= "+offset(AtRiskWindowDays))
	case Expiring0to30:
		conds = append(conds, "resource_end_date BETWEEN "+offset(0)+" AND "+offset(30))
	case Expiring31to60:
		conds = append(conds, "resource_end_date BETWEEN "+offset(31)+" AND "+offset(60))
	case Expiring61to90:
		conds = append(conds, "resource_end_date BETWEEN "+offset(61)+" AND "+offset(90))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
