// Package pipeline loads a ko_list, an optional query FASTA and hmmsearch
// tables into one result.Result ready for a writer.
//
// It only parses and joins; scoring already happened upstream in HMMER.
package pipeline
