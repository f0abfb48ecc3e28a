// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for one gene → KO hit.
// Existing fields never change; new ones must be ",omitempty".
type HitV1 struct {
	KO             string   `json:"ko"`
	Definition     string   `json:"definition"`
	Threshold      *float64 `json:"threshold,omitempty"` // absent when the profile is uncalibrated
	Score          float64  `json:"score"`
	EValue         float64  `json:"e_value"`
	AboveThreshold bool     `json:"above_threshold"`
}

// GeneHitsV1 groups a gene's hits, highest score first.
type GeneHitsV1 struct {
	Gene string  `json:"gene"`
	Hits []HitV1 `json:"hits"`
}
