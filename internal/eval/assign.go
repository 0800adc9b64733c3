// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

// Assignments returns all 2^n truth assignments for n ordered variables.
// Rows count down in binary with the first variable most significant and
// true standing for 1: for two variables the order is TT, TF, FT, FF.
func Assignments(n int) [][]bool {
	rows := 1 << n
	out := make([][]bool, rows)
	for x := range out {
		out[x] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		// Column i alternates in blocks of innerFreq rows, repeated 2^i times.
		innerFreq := 1 << (n - i - 1)
		for x := 0; x < rows; x++ {
			out[x][i] = (x/innerFreq)%2 == 0
		}
	}
	return out
}

// firstAssignment is row 0 of Assignments(n) without building the others.
func firstAssignment(n int) []bool {
	row := make([]bool, n)
	for i := range row {
		row[i] = true
	}
	return row
}
