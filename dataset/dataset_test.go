// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numeric/dataset"
)

const sample = "1.5 2.5\n3.5\n\n  4.5\t-1e-3\n"

var sampleValues = []float64{1.5, 2.5, 3.5, 4.5, -1e-3}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestRead_Tokens(t *testing.T) {
	got, err := dataset.Read[float64](strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, sampleValues, got)
}

func TestRead_Empty(t *testing.T) {
	got, err := dataset.Read[float64](strings.NewReader(" \n\t"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_Float32(t *testing.T) {
	got, err := dataset.Read[float32](strings.NewReader("0.1 0.2"))
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, got)
}

func TestRead_ParseErrorNamesToken(t *testing.T) {
	_, err := dataset.Read[float64](strings.NewReader("1 2 three 4"))
	require.ErrorIs(t, err, dataset.ErrParse)
	assert.Contains(t, err.Error(), "token 2")
	assert.Contains(t, err.Error(), `"three"`)
}

func TestReadFile_Formats(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"plain.txt", []byte(sample)},
		{"noext", []byte(sample)},
		{"gz.txt.gz", gzipped(t, sample)},
		{"upper.TXT.GZ", gzipped(t, sample)},
		{"zst.txt.zst", zstded(t, sample)},
		{"zstd.txt.zstd", zstded(t, sample)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := dataset.ReadFile[float64](writeFile(t, c.name, c.data))
			require.NoError(t, err)
			assert.Equal(t, sampleValues, got)
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := dataset.ReadFile[float64](filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, dataset.ErrOpen)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadFile_CorruptGzip(t *testing.T) {
	_, err := dataset.ReadFile[float64](writeFile(t, "bad.gz", []byte("not gzip at all")))
	assert.ErrorIs(t, err, dataset.ErrOpen)
}

func TestReadFile_ParseErrorNamesFile(t *testing.T) {
	path := writeFile(t, "bad.txt", []byte("1 x"))
	_, err := dataset.ReadFile[float64](path)
	require.ErrorIs(t, err, dataset.ErrParse)
	assert.Contains(t, err.Error(), path)
}

func TestOpen_Close(t *testing.T) {
	rc, err := dataset.Open(writeFile(t, "a.gz", gzipped(t, "1")))
	require.NoError(t, err)
	assert.NoError(t, rc.Close())

	rc, err = dataset.Open(writeFile(t, "a.zst", zstded(t, "1")))
	require.NoError(t, err)
	assert.NoError(t, rc.Close())
}

func TestDescribe(t *testing.T) {
	s, err := dataset.Describe([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.InDelta(t, 3.0, s.Mean, 1e-15)
	assert.InDelta(t, 1.5811388300841898, s.StdDev, 1e-12)
	assert.Equal(t, "n: 5, min: 1, max: 5, mean: 3, std_dev: 1.58", s.String())
}

func TestDescribe_Single(t *testing.T) {
	s, err := dataset.Describe([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, dataset.Summary{Count: 1, Min: 7, Max: 7, Mean: 7}, s)
}

func TestDescribe_Empty(t *testing.T) {
	_, err := dataset.Describe(nil)
	assert.ErrorIs(t, err, dataset.ErrEmpty)
}
