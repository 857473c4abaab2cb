package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"resourcing/internal/domain/resource"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// NameCount is one slice of a chart: a label and its headcount.
type NameCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (s *Store) TotalHeadcount(ctx context.Context) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM resources").Scan(&total); err != nil {
		return 0, fmt.Errorf("total headcount: %w", err)
	}
	return total, nil
}

func (s *Store) AtRiskCount(ctx context.Context, today time.Time) (int, error) {
	var total int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM resources
    WHERE resource_end_date IS NOT NULL AND resource_end_date <= $1::date
  `, resource.SQLDate(today.AddDate(0, 0, resource.AtRiskWindowDays))).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("at-risk count: %w", err)
	}
	return total, nil
}

func (s *Store) PartiallyAllocatedCount(ctx context.Context) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM resources WHERE allocation_percent < 100").Scan(&total); err != nil {
		return 0, fmt.Errorf("partially allocated count: %w", err)
	}
	return total, nil
}

func (s *Store) ActiveProjectCount(ctx context.Context) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(DISTINCT project) FROM resources").Scan(&total); err != nil {
		return 0, fmt.Errorf("active project count: %w", err)
	}
	return total, nil
}

func (s *Store) HeadcountByStream(ctx context.Context) ([]NameCount, error) {
	return s.nameCounts(ctx, "SELECT stream, COUNT(1) FROM resources GROUP BY stream ORDER BY stream")
}

func (s *Store) HeadcountPerProject(ctx context.Context) ([]NameCount, error) {
	return s.nameCounts(ctx, "SELECT project, COUNT(1) FROM resources GROUP BY project ORDER BY COUNT(1) DESC, project")
}

func (s *Store) nameCounts(ctx context.Context, query string) ([]NameCount, error) {
	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("headcount group: %w", err)
	}
	defer rows.Close()

	out := make([]NameCount, 0)
	for rows.Next() {
		var nc NameCount
		if err := rows.Scan(&nc.Name, &nc.Value); err != nil {
			return nil, fmt.Errorf("headcount group: %w", err)
		}
		out = append(out, nc)
	}
	return out, rows.Err()
}

// EndDateDiffs returns, for every record with an end date, the whole-day
// difference from today mapped to how many records share it. Bucketing
// happens in the service so the boundary math lives in one place.
func (s *Store) EndDateDiffs(ctx context.Context, today time.Time) (map[int]int, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT resource_end_date - $1::date AS diff, COUNT(1)
    FROM resources
    WHERE resource_end_date IS NOT NULL
    GROUP BY diff
  `, resource.SQLDate(today))
	if err != nil {
		return nil, fmt.Errorf("end date diffs: %w", err)
	}
	defer rows.Close()

	out := map[int]int{}
	for rows.Next() {
		var diff, count int
		if err := rows.Scan(&diff, &count); err != nil {
			return nil, fmt.Errorf("end date diffs: %w", err)
		}
		out[diff] = count
	}
	return out, rows.Err()
}

// AtRiskEmployee is the shortlist projection shown on the dashboard.
type AtRiskEmployee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DaysLeft int    `json:"daysLeft"`
	Project  string `json:"project"`
}

// AtRiskShortlist lists the soonest-expiring at-risk records. DaysLeft is
// computed from the end date and today, never read from storage.
func (s *Store) AtRiskShortlist(ctx context.Context, today time.Time, limit int) ([]AtRiskEmployee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id::text,
           first_name || ' ' || last_name,
           resource_end_date - $1::date AS days_left,
           project
    FROM resources
    WHERE resource_end_date IS NOT NULL AND resource_end_date <= $2::date
    ORDER BY days_left, id
    LIMIT $3
  `, resource.SQLDate(today), resource.SQLDate(today.AddDate(0, 0, resource.AtRiskWindowDays)), limit)
	if err != nil {
		return nil, fmt.Errorf("at-risk shortlist: %w", err)
	}
	defer rows.Close()

	out := make([]AtRiskEmployee, 0, limit)
	for rows.Next() {
		var emp AtRiskEmployee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.DaysLeft, &emp.Project); err != nil {
			return nil, fmt.Errorf("at-risk shortlist: %w", err)
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

type projectStreamCount struct {
	Project string
	Stream  string
	Count   int
}

func (s *Store) ProjectStreamCounts(ctx context.Context) ([]projectStreamCount, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT project, stream, COUNT(1)
    FROM resources
    GROUP BY project, stream
    ORDER BY project, stream
  `)
	if err != nil {
		return nil, fmt.Errorf("project stream counts: %w", err)
	}
	defer rows.Close()

	var out []projectStreamCount
	for rows.Next() {
		var psc projectStreamCount
		if err := rows.Scan(&psc.Project, &psc.Stream, &psc.Count); err != nil {
			return nil, fmt.Errorf("project stream counts: %w", err)
		}
		out = append(out, psc)
	}
	return out, rows.Err()
}

type skillCount struct {
	Stream string
	Skill  string
	Count  int
}

// SkillCounts unnests tech_skills for the given streams, trimming each
// value before grouping so "  Go" and "Go" count together.
func (s *Store) SkillCounts(ctx context.Context, streams []string) ([]skillCount, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT stream, btrim(skill) AS name, COUNT(1)
    FROM resources, unnest(tech_skills) AS skill
    WHERE stream = ANY($1) AND btrim(skill) <> ''
    GROUP BY stream, name
    ORDER BY stream, COUNT(1) DESC, name
  `, streams)
	if err != nil {
		return nil, fmt.Errorf("skill counts: %w", err)
	}
	defer rows.Close()

	var out []skillCount
	for rows.Next() {
		var sc skillCount
		if err := rows.Scan(&sc.Stream, &sc.Skill, &sc.Count); err != nil {
			return nil, fmt.Errorf("skill counts: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
