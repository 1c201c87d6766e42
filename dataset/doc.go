// SPDX-License-Identifier: MIT

// Package dataset loads raw sample sets: whitespace- or line-separated
// decimal numbers, one sample per token, in file order.
//
// Files ending in .gz are read through gzip and files ending in .zst or
// .zstd through Zstandard; anything else is read as plain text.
//
//	samples, err := dataset.ReadFile[float64]("period.txt.gz")
//	m, err := uncertainty.SetupMeasurement(samples, 0.01)
//
// Describe gives a quick summary (count, range, mean, sample standard
// deviation) of a loaded set.
package dataset
