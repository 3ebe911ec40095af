package run

import (
	"fmt"
	"sort"
	"strings"

	"govariate/domain/core"
)

// Generator kinds a manifest can record.
const (
	KindUniform    = "uniform"
	KindUniformInt = "uniform_int"
	KindNormal     = "normal"
	KindBootstrap  = "bootstrap"
)

// ValidKind reports whether kind names a known generator.
func ValidKind(kind string) bool {
	switch kind {
	case KindUniform, KindUniformInt, KindNormal, KindBootstrap:
		return true
	}
	return false
}

// Manifest is the replay record of one draw run. Kind, params, seed and
// count fully determine the drawn values, and the fingerprint binds them
// together, so a stored manifest is enough to reproduce or audit the run.
type Manifest struct {
	RunID       core.RunID             `json:"run_id"`
	Kind        string                 `json:"kind"`
	Params      map[string]interface{} `json:"params"`
	Seed        int64                  `json:"seed"`
	Count       int                    `json:"count"`
	Fingerprint core.Hash              `json:"fingerprint"`
	Summary     map[string]float64     `json:"summary,omitempty"`
	CreatedAt   core.Timestamp         `json:"created_at"`
}

// NewManifest creates a manifest for a draw run, computing its fingerprint.
func NewManifest(runID core.RunID, kind string, params map[string]interface{}, seed int64, count int) *Manifest {
	return &Manifest{
		RunID:       runID,
		Kind:        kind,
		Params:      params,
		Seed:        seed,
		Count:       count,
		Fingerprint: ComputeFingerprint(kind, params, seed, count),
		CreatedAt:   core.Now(),
	}
}

// ComputeFingerprint generates a deterministic hash over everything that
// determines a run's output. Params are serialized in sorted key order so
// map iteration order cannot leak into the hash.
func ComputeFingerprint(kind string, params map[string]interface{}, seed int64, count int) core.Hash {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var canonical strings.Builder
	for _, k := range keys {
		canonical.WriteString(k)
		canonical.WriteString("=")
		canonical.WriteString(fmt.Sprintf("%v", params[k]))
		canonical.WriteString(",")
	}

	data := fmt.Sprintf("kind:%s|params:%s|seed:%d|count:%d", kind, canonical.String(), seed, count)
	return core.NewHash([]byte(data))
}

// Validate checks if the manifest is complete
func (m *Manifest) Validate() error {
	if core.ID(m.RunID).IsEmpty() {
		return core.NewValidationError("run_manifest", "run_id cannot be empty")
	}
	if !ValidKind(m.Kind) {
		return core.NewValidationError("run_manifest", fmt.Sprintf("unknown generator kind %q", m.Kind))
	}
	if m.Count <= 0 {
		return core.NewValidationError("run_manifest", "count must be positive")
	}
	if m.Fingerprint.IsEmpty() {
		return core.NewValidationError("run_manifest", "fingerprint cannot be empty")
	}
	return nil
}
