// SPDX-License-Identifier: MIT

// Package matrix - JSON encoding.
//
// Wire format: an array of rows, each an array of numbers:
//
//	[[1,5],[-4,3]]
//
// Decoding always goes through New, so empty or ragged documents fail with
// the same sentinels as in-process construction. NaN and ±Inf have no JSON
// representation; encoding a matrix that holds them returns an error.
package matrix

import (
	"fmt"

	"github.com/goccy/go-json"
)

const (
	ctxMarshal   = "MarshalJSON"
	ctxUnmarshal = "UnmarshalJSON"
	ctxDecode    = "DecodeJSON"
)

// MarshalJSON encodes m as an array of rows. An n×0 matrix encodes as n
// empty arrays. The zero Matrix value has no valid encoding (ErrEmpty).
func (m *Matrix) MarshalJSON() ([]byte, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(ctxMarshal, err)
	}
	out, err := json.Marshal(m.ToRows())
	if err != nil {
		return nil, matrixErrorf(ctxMarshal, err)
	}

	return out, nil
}

// UnmarshalJSON decodes an array of rows into m using the default options.
// It is meant for decoding into a fresh value (json.Unmarshal(data, &m));
// use DecodeJSON to pass options such as WithValidateNaNInf.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	decoded, err := decode(ctxUnmarshal, data)
	if err != nil {
		return err
	}
	*m = *decoded

	return nil
}

// DecodeJSON decodes an array of rows and builds a Matrix with opts.
//
// Errors:
//   - syntax/type errors from the JSON decoder.
//   - ErrEmpty, ErrRagged, ErrNaNInf from New.
func DecodeJSON(data []byte, opts ...Option) (*Matrix, error) {
	return decode(ctxDecode, data, opts...)
}

func decode(op string, data []byte, opts ...Option) (*Matrix, error) {
	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, matrixErrorf(op, fmt.Errorf("decode rows: %w", err))
	}
	m, err := New(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	return m, nil
}
