package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Upserter is the single store capability bulk import needs.
type Upserter interface {
	UpsertByName(ctx context.Context, in Input) (bool, error)
}

type Importer struct {
	Store Upserter
}

func NewImporter(store Upserter) *Importer {
	return &Importer{Store: store}
}

// ImportSummary is the batch outcome. Processed counts every row in the
// payload, including skipped ones.
type ImportSummary struct {
	Processed int
	Created   int
	Updated   int
	Skipped   int
}

func (s ImportSummary) Message() string {
	return fmt.Sprintf("Successfully processed %d records.", s.Processed)
}

// ImportJSON ingests a {"resources": [...]} payload. Rows missing either
// name are skipped silently; a bad end date degrades to null on that row
// rather than failing the batch. A malformed top-level shape is the only
// client error; store failures abort the batch.
func (im *Importer) ImportJSON(ctx context.Context, raw []byte) (ImportSummary, error) {
	var summary ImportSummary

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return summary, fmt.Errorf("%w: must be a JSON object", ErrBadPayload)
	}
	rowsRaw, ok := doc["resources"]
	if !ok {
		return summary, fmt.Errorf("%w: must contain a 'resources' key", ErrBadPayload)
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(rowsRaw, &rows); err != nil {
		return summary, fmt.Errorf("%w: 'resources' must be a list", ErrBadPayload)
	}

	summary.Processed = len(rows)
	for _, rowRaw := range rows {
		var row map[string]any
		if err := json.Unmarshal(rowRaw, &row); err != nil {
			summary.Skipped++
			continue
		}
		in := DecodeInput(row)
		if !hasValue(in.FirstName) || !hasValue(in.LastName) {
			summary.Skipped++
			continue
		}

		created, err := im.Store.UpsertByName(ctx, in)
		if err != nil {
			return summary, err
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}
	return summary, nil
}

func hasValue(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
