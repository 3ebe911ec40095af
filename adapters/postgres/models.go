package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"govariate/domain/core"
	"govariate/domain/run"
)

// JSONBMap is a custom type for PostgreSQL JSONB columns that maps to map[string]interface{}
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (j JSONBMap) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSONBMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*j = make(JSONBMap)
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// runRow is the variate_runs table shape of a manifest.
type runRow struct {
	RunID       string
	Kind        string
	Params      JSONBMap
	Seed        int64
	DrawCount   int
	Fingerprint string
	Summary     JSONBMap
	CreatedAt   time.Time
}

func rowFromManifest(m *run.Manifest) runRow {
	return runRow{
		RunID:       m.RunID.String(),
		Kind:        m.Kind,
		Params:      JSONBMap(m.Params),
		Seed:        m.Seed,
		DrawCount:   m.Count,
		Fingerprint: m.Fingerprint.String(),
		Summary:     summaryToJSONB(m.Summary),
		CreatedAt:   m.CreatedAt.Time(),
	}
}

func (r runRow) toManifest() *run.Manifest {
	return &run.Manifest{
		RunID:       core.RunID(r.RunID),
		Kind:        r.Kind,
		Params:      map[string]interface{}(r.Params),
		Seed:        r.Seed,
		Count:       r.DrawCount,
		Fingerprint: core.Hash(r.Fingerprint),
		Summary:     summaryFromJSONB(r.Summary),
		CreatedAt:   core.NewTimestamp(r.CreatedAt),
	}
}

func summaryToJSONB(summary map[string]float64) JSONBMap {
	if summary == nil {
		return nil
	}
	out := make(JSONBMap, len(summary))
	for k, v := range summary {
		out[k] = v
	}
	return out
}

// summaryFromJSONB narrows a decoded JSONB object back to float64 values.
// JSON numbers always decode as float64, so non-numeric entries can only
// appear if the column was written by something else; they are skipped.
func summaryFromJSONB(m JSONBMap) map[string]float64 {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		if f, ok := v.(float64); ok {
			out[k] = f
		}
	}
	return out
}
