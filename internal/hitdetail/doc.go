// Package hitdetail renders annotation hits as the fixed-column
// "hit detail" table.
//
// Layout:
//   • one row per hit, genes in query order, hits by descending score
//   • '*' marks hits at or above their KO's calibrated threshold
//   • genes without hits are skipped, or shown as a '-' row on request
//
// Header and rows are drawn from one column table so they cannot drift.
package hitdetail
