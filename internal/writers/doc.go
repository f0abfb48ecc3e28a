// Package writers turns annotation results into serialized reports.
//
// Design:
//   • Writers own all presentation knowledge (hit detail, KEGG Mapper, JSON/JSONL).
//   • Loaders stay parse-only; the app stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
