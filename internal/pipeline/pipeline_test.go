package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const koList = "knum\tthreshold\tscore_type\tprofile_type\tF-measure\tnseq\tnseq_used\talen\tmlen\teff_nseq\tre/pos\tdefinition\n" +
	"K00001\t99.52\tfull\tall\t0.24\t1458\t1033\t1536\t355\t10.61\t0.590\talcohol dehydrogenase [EC:1.1.1.1]\n" +
	"K00002\t150.00\tfull\tall\t0.92\t2756\t2756\t1210\t340\t6.97\t0.590\talcohol dehydrogenase (NADP+) [EC:1.1.1.2]\n"

const table = "" +
	"gene2 - K00002 - 5e-05 180.0 0.0 1e-04 170.5 0.0 1.1 1 0 0 1 1 1 1 -\n" +
	"gene1 - K00001 - 0.0009 50.1 0.1 0.002 48.0 0.1 1.0 1 0 0 1 1 1 1 -\n" +
	"orphan - K07777 - 1e-20 300.0 0.0 1e-20 299.0 0.0 1.0 1 0 0 1 1 1 1 -\n"

const queries = ">gene1\nMKV\n>gene2\nMST\n>gene3\nMMM\n"

func writeInputs(t *testing.T) (dir string) {
	t.Helper()
	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ko_list"), []byte(koList), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hits.tbl"), []byte(table), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "query.faa"), []byte(queries), 0o644))
	return dir
}

func TestLoad_WithQueryFASTA(t *testing.T) {
	dir := writeInputs(t)
	res, sum, err := Load(context.Background(), Config{
		KOList:  filepath.Join(dir, "ko_list"),
		Tblout:  []string{filepath.Join(dir, "hits.tbl")},
		Queries: filepath.Join(dir, "query.faa"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"gene1", "gene2", "gene3"}, res.QueryList())
	assert.Len(t, res.ForGene("gene1"), 1)
	assert.Equal(t, 2, sum.KOs)
	assert.Equal(t, 3, sum.Queries)
	assert.Equal(t, 3, sum.Hits)
	assert.Equal(t, []string{"K07777"}, sum.UnknownKOs)
	assert.Equal(t, []string{"orphan"}, sum.Unlisted)
}

func TestLoad_QueriesFromTables(t *testing.T) {
	dir := writeInputs(t)
	res, sum, err := Load(context.Background(), Config{
		KOList:    filepath.Join(dir, "ko_list"),
		Tblout:    []string{filepath.Join(dir, "hits.tbl")},
		MaxEValue: 1e-3,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"gene2", "gene1", "orphan"}, res.QueryList())
	assert.Empty(t, sum.Unlisted)
	assert.Zero(t, sum.Filtered)
}

func TestLoad_Errors(t *testing.T) {
	dir := writeInputs(t)
	ctx := context.Background()

	_, _, err := Load(ctx, Config{KOList: filepath.Join(dir, "missing")})
	assert.ErrorContains(t, err, "load ko_list")

	_, _, err = Load(ctx, Config{KOList: filepath.Join(dir, "ko_list"), Queries: filepath.Join(dir, "missing.faa")})
	assert.ErrorContains(t, err, "load queries")

	_, _, err = Load(ctx, Config{KOList: filepath.Join(dir, "ko_list"), Tblout: []string{filepath.Join(dir, "missing.tbl")}})
	assert.ErrorContains(t, err, "load hmmsearch table")
}
