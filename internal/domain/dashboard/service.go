package dashboard

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"resourcing/internal/domain/resource"
)

// AtRiskShortlistSize caps the dashboard's soonest-expiring list.
const AtRiskShortlistSize = 5

const (
	bucketExpiredSoon = "Expired / 0-30 Days"
	bucket31to60      = "31-60 Days"
	bucket61to90      = "61-90 Days"
	bucketOther       = "Other"
)

type KPIs struct {
	TotalHeadcount     int `json:"totalHeadcount"`
	AtRiskContracts    int `json:"atRiskContracts"`
	PartiallyAllocated int `json:"partiallyAllocated"`
	ActiveProjects     int `json:"activeProjects"`
}

// ProjectStreamRow reports one project's headcount per core stream; streams
// without records are zero, not omitted.
type ProjectStreamRow struct {
	Project  string `json:"project"`
	Backend  int    `json:"Backend"`
	Frontend int    `json:"Frontend"`
	QA       int    `json:"QA"`
}

type Charts struct {
	HeadcountByStream          []NameCount        `json:"headcountByStream"`
	HeadcountPerProject        []NameCount        `json:"headcountPerProject"`
	ExpiringContractsBreakdown []NameCount        `json:"expiringContractsBreakdown"`
	ProjectStreamDistribution  []ProjectStreamRow `json:"projectStreamDistribution"`
}

type Summary struct {
	KPIs            KPIs             `json:"kpis"`
	Charts          Charts           `json:"charts"`
	AtRiskEmployees []AtRiskEmployee `json:"atRiskEmployees"`
}

// SkillEntry is one skill's frequency within a stream. Unlike the chart
// slices it reports "count", not "value".
type SkillEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SkillGroup struct {
	Stream string       `json:"stream"`
	Skills []SkillEntry `json:"skills"`
}

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// Summary fans the nine sub-computations out concurrently and joins them
// into one response. Every sub-query sees the same today, so bucket
// boundaries agree across the whole response. Any failure aborts the
// summary; there are no partial dashboards.
func (svc *Service) Summary(ctx context.Context, today time.Time) (*Summary, error) {
	today = resource.Midnight(today)

	var (
		totalHeadcount      int
		atRiskContracts     int
		partiallyAllocated  int
		activeProjects      int
		headcountByStream   []NameCount
		headcountPerProject []NameCount
		endDateDiffs        map[int]int
		atRiskEmployees     []AtRiskEmployee
		projectStreamCounts []projectStreamCount
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalHeadcount, err = svc.Store.TotalHeadcount(ctx)
		return err
	})
	g.Go(func() (err error) {
		atRiskContracts, err = svc.Store.AtRiskCount(ctx, today)
		return err
	})
	g.Go(func() (err error) {
		partiallyAllocated, err = svc.Store.PartiallyAllocatedCount(ctx)
		return err
	})
	g.Go(func() (err error) {
		activeProjects, err = svc.Store.ActiveProjectCount(ctx)
		return err
	})
	g.Go(func() (err error) {
		headcountByStream, err = svc.Store.HeadcountByStream(ctx)
		return err
	})
	g.Go(func() (err error) {
		headcountPerProject, err = svc.Store.HeadcountPerProject(ctx)
		return err
	})
	g.Go(func() (err error) {
		endDateDiffs, err = svc.Store.EndDateDiffs(ctx, today)
		return err
	})
	g.Go(func() (err error) {
		atRiskEmployees, err = svc.Store.AtRiskShortlist(ctx, today, AtRiskShortlistSize)
		return err
	})
	g.Go(func() (err error) {
		projectStreamCounts, err = svc.Store.ProjectStreamCounts(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Summary{
		KPIs: KPIs{
			TotalHeadcount:     totalHeadcount,
			AtRiskContracts:    atRiskContracts,
			PartiallyAllocated: partiallyAllocated,
			ActiveProjects:     activeProjects,
		},
		Charts: Charts{
			HeadcountByStream:          headcountByStream,
			HeadcountPerProject:        headcountPerProject,
			ExpiringContractsBreakdown: bucketHistogram(endDateDiffs),
			ProjectStreamDistribution:  pivotProjectStreams(projectStreamCounts),
		},
		AtRiskEmployees: atRiskEmployees,
	}, nil
}

// SkillDistribution reports per-stream skill frequency for the core
// streams only.
func (svc *Service) SkillDistribution(ctx context.Context) ([]SkillGroup, error) {
	counts, err := svc.Store.SkillCounts(ctx, resource.CoreStreams)
	if err != nil {
		return nil, err
	}
	return regroupSkills(counts), nil
}

// bucketLabel places a whole-day difference into its expiry bucket.
// The buckets are contiguous: 30 is still the first bucket, 31 opens the
// second, 90 closes the third, 91 falls into the residual.
func bucketLabel(diff int) string {
	switch {
	case diff <= 30:
		return bucketExpiredSoon
	case diff <= 60:
		return bucket31to60
	case diff <= 90:
		return bucket61to90
	default:
		return bucketOther
	}
}

// bucketHistogram folds day differences into the expiry buckets. The
// residual bucket collects everything past 90 days and is dropped before
// the histogram is returned.
func bucketHistogram(diffs map[int]int) []NameCount {
	counts := map[string]int{}
	for diff, n := range diffs {
		counts[bucketLabel(diff)] += n
	}
	delete(counts, bucketOther)

	out := make([]NameCount, 0, 3)
	for _, label := range []string{bucketExpiredSoon, bucket31to60, bucket61to90} {
		out = append(out, NameCount{Name: label, Value: counts[label]})
	}
	return out
}

// pivotProjectStreams turns (project, stream, count) rows into one row per
// project with the core streams zero-filled, sorted by project name.
// Counts for streams outside the core three are dropped from the matrix.
func pivotProjectStreams(counts []projectStreamCount) []ProjectStreamRow {
	byProject := map[string]*ProjectStreamRow{}
	var order []string
	for _, psc := range counts {
		row, ok := byProject[psc.Project]
		if !ok {
			row = &ProjectStreamRow{Project: psc.Project}
			byProject[psc.Project] = row
			order = append(order, psc.Project)
		}
		switch psc.Stream {
		case resource.StreamBackend:
			row.Backend = psc.Count
		case resource.StreamFrontend:
			row.Frontend = psc.Count
		case resource.StreamQA:
			row.QA = psc.Count
		}
	}
	sort.Strings(order)

	out := make([]ProjectStreamRow, 0, len(order))
	for _, project := range order {
		out = append(out, *byProject[project])
	}
	return out
}

// regroupSkills folds (stream, skill, count) rows into per-stream groups.
// Input is already ordered by stream, then count descending.
func regroupSkills(counts []skillCount) []SkillGroup {
	groups := make([]SkillGroup, 0)
	for _, sc := range counts {
		if len(groups) == 0 || groups[len(groups)-1].Stream != sc.Stream {
			groups = append(groups, SkillGroup{Stream: sc.Stream, Skills: make([]SkillEntry, 0, 4)})
		}
		last := &groups[len(groups)-1]
		last.Skills = append(last.Skills, SkillEntry{Name: sc.Skill, Count: sc.Count})
	}
	return groups
}
