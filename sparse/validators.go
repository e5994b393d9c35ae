// SPDX-License-Identifier: MIT
// Package sparse: centralized validation helpers.
//
// Purpose:
//   - Provide a single, canonical source of truth for operand checks shared
//     by the multiplication, insertion and Gram kernels.
//   - Keep kernels minimal by delegating shape/placement checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their method tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Deep-check scans run O(nnz) on the host mirrors only when enabled.

package sparse

// validateVecLens ensures x and y match the given operand lengths.
// Returns ErrDimensionMismatch on any violation. Complexity: O(1).
func validateVecLens(x VectorData, wantX int, y VectorData, wantY int) error {
	if x.Size() != wantX || y.Size() != wantY {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSquare ensures the dense destination is square.
// Returns ErrNonSquare otherwise. Complexity: O(1).
func validateSquare(w DenseBlock) error {
	if w.Rows() != w.Cols() {
		return ErrNonSquare
	}

	return nil
}

// validateBlockPlacement ensures a blockRows×blockCols block starting at
// (rowStart, colStart) lies within w. Returns ErrOutOfRange otherwise.
// Complexity: O(1).
func validateBlockPlacement(rowStart, colStart, blockRows, blockCols int, w DenseBlock) error {
	if rowStart < 0 || rowStart+blockRows > w.Rows() {
		return ErrOutOfRange
	}
	if colStart < 0 || colStart+blockCols > w.Cols() {
		return ErrOutOfRange
	}

	return nil
}

// checkUpperTrianglePlacement scans mapped destination coordinates and
// rejects any entry landing strictly below the diagonal of w. Rows and cols
// are the host-mirror index arrays; the offsets shift them into w.
// Deep-checks helper; Complexity: O(nnz).
func checkUpperTrianglePlacement(rows, cols []int, rowOff, colOff int) error {
	for k := range rows {
		if rows[k]+rowOff > cols[k]+colOff {
			return ErrNotUpperTriangular
		}
	}

	return nil
}

// checkUpperTriangleStorage rejects stored triplets with row>col (symmetric
// storage keeps the upper triangle only). Deep-checks helper; O(nnz).
func checkUpperTriangleStorage(rows, cols []int) error {
	for k := range rows {
		if rows[k] > cols[k] {
			return ErrNotUpperTriangular
		}
	}

	return nil
}
