package resource

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const recordColumns = `id::text, first_name, last_name, allocation_percent, billable,
       contract_type, job_title, line_manager, location, notes,
       project, stream, open_air_ids, tech_skills, resource_end_date,
       created_at, updated_at`

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.FirstName, &rec.LastName, &rec.AllocationPercent, &rec.Billable,
		&rec.ContractType, &rec.JobTitle, &rec.LineManager, &rec.Location, &rec.Notes,
		&rec.Project, &rec.Stream, &rec.OpenAirIDs, &rec.TechSkills, &rec.ResourceEndDate,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// ListQuery describes one filtered, sorted, optionally paginated read.
// Limit <= 0 means the full matching set (used by the export path).
type ListQuery struct {
	Filter         Filter
	SortBy         string
	SortDescending bool
	Skip           int
	Limit          int
}

func (s *Store) List(ctx context.Context, q ListQuery, today time.Time) ([]Record, error) {
	where, args := q.Filter.Compile(today)

	direction := "ASC"
	if q.SortDescending {
		direction = "DESC"
	}
	query := "SELECT " + recordColumns + " FROM resources" + where +
		" ORDER BY " + SortColumn(q.SortBy) + " " + direction + ", id"

	if q.Limit > 0 {
		query += " OFFSET $" + strconv.Itoa(len(args)+1) + " LIMIT $" + strconv.Itoa(len(args)+2)
		args = append(args, q.Skip, q.Limit)
	} else if q.Skip > 0 {
		query += " OFFSET $" + strconv.Itoa(len(args)+1)
		args = append(args, q.Skip)
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list resources: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) Count(ctx context.Context, f Filter, today time.Time) (int, error) {
	where, args := f.Compile(today)
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM resources"+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count resources: %w", err)
	}
	return total, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	rec, err := scanRecord(s.DB.QueryRow(ctx, "SELECT "+recordColumns+" FROM resources WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return &rec, nil
}

func (s *Store) Create(ctx context.Context, in Input) (string, error) {
	if in.IsEmpty() {
		return "", ErrEmptyPayload
	}
	var rec Record
	rec.OpenAirIDs = []string{}
	rec.TechSkills = []string{}
	in.Apply(&rec)

	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO resources (first_name, last_name, allocation_percent, billable,
                           contract_type, job_title, line_manager, location, notes,
                           project, stream, open_air_ids, tech_skills, resource_end_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
    RETURNING id::text
  `, rec.FirstName, rec.LastName, rec.AllocationPercent, rec.Billable,
		rec.ContractType, rec.JobTitle, rec.LineManager, rec.Location, rec.Notes,
		rec.Project, rec.Stream, rec.OpenAirIDs, rec.TechSkills, rec.ResourceEndDate).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create resource: %w", err)
	}
	return id, nil
}

// UpdateOutcome distinguishes a write that changed the record from one
// whose supplied fields already matched it.
type UpdateOutcome int

const (
	OutcomeUpdated UpdateOutcome = iota
	OutcomeUnchanged
)

// PartialUpdate overlays the supplied fields onto the stored record. Only
// supplied fields change; an update that would change nothing is reported
// as unchanged without writing.
func (s *Store) PartialUpdate(ctx context.Context, id string, in Input) (UpdateOutcome, error) {
	if in.IsEmpty() {
		return 0, ErrEmptyPayload
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	updated := *current
	in.Apply(&updated)
	if recordsEqual(*current, updated) {
		return OutcomeUnchanged, nil
	}

	_, err = s.DB.Exec(ctx, `
    UPDATE resources
    SET first_name = $2, last_name = $3, allocation_percent = $4, billable = $5,
        contract_type = $6, job_title = $7, line_manager = $8, location = $9,
        notes = $10, project = $11, stream = $12, open_air_ids = $13,
        tech_skills = $14, resource_end_date = $15, updated_at = now()
    WHERE id = $1
  `, id, updated.FirstName, updated.LastName, updated.AllocationPercent, updated.Billable,
		updated.ContractType, updated.JobTitle, updated.LineManager, updated.Location,
		updated.Notes, updated.Project, updated.Stream, updated.OpenAirIDs,
		updated.TechSkills, updated.ResourceEndDate)
	if err != nil {
		return 0, fmt.Errorf("update resource: %w", err)
	}
	return OutcomeUpdated, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	tag, err := s.DB.Exec(ctx, "DELETE FROM resources WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertByName writes the full field set keyed by (firstName, lastName).
// A matching pair updates the oldest matching record; no match inserts.
// Returns true when a record was created.
func (s *Store) UpsertByName(ctx context.Context, in Input) (bool, error) {
	var rec Record
	rec.OpenAirIDs = []string{}
	rec.TechSkills = []string{}
	in.Apply(&rec)

	tag, err := s.DB.Exec(ctx, `
    UPDATE resources
    SET allocation_percent = $3, billable = $4, contract_type = $5, job_title = $6,
        line_manager = $7, location = $8, notes = $9, project = $10, stream = $11,
        open_air_ids = $12, tech_skills = $13, resource_end_date = $14, updated_at = now()
    WHERE id = (
      SELECT id FROM resources
      WHERE first_name = $1 AND last_name = $2
      ORDER BY created_at, id
      LIMIT 1
    )
  `, rec.FirstName, rec.LastName, rec.AllocationPercent, rec.Billable, rec.ContractType,
		rec.JobTitle, rec.LineManager, rec.Location, rec.Notes, rec.Project, rec.Stream,
		rec.OpenAirIDs, rec.TechSkills, rec.ResourceEndDate)
	if err != nil {
		return false, fmt.Errorf("upsert resource: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = s.DB.Exec(ctx, `
    INSERT INTO resources (first_name, last_name, allocation_percent, billable,
                           contract_type, job_title, line_manager, location, notes,
                           project, stream, open_air_ids, tech_skills, resource_end_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
  `, rec.FirstName, rec.LastName, rec.AllocationPercent, rec.Billable,
		rec.ContractType, rec.JobTitle, rec.LineManager, rec.Location, rec.Notes,
		rec.Project, rec.Stream, rec.OpenAirIDs, rec.TechSkills, rec.ResourceEndDate)
	if err != nil {
		return false, fmt.Errorf("upsert resource: %w", err)
	}
	return true, nil
}

func recordsEqual(a, b Record) bool {
	if a.FirstName != b.FirstName || a.LastName != b.LastName ||
		a.AllocationPercent != b.AllocationPercent || a.Billable != b.Billable ||
		a.ContractType != b.ContractType || a.JobTitle != b.JobTitle ||
		a.LineManager != b.LineManager || a.Location != b.Location ||
		a.Notes != b.Notes || a.Project != b.Project || a.Stream != b.Stream {
		return false
	}
	if !slices.Equal(a.OpenAirIDs, b.OpenAirIDs) || !slices.Equal(a.TechSkills, b.TechSkills) {
		return false
	}
	return datesEqual(a.ResourceEndDate, b.ResourceEndDate)
}

func datesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return Midnight(*a).Equal(Midnight(*b))
}
