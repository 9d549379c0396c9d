// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose unexported helpers and a read-only view of Options to matrix_test ONLY.
//   - Compiled only with `go test` (the _test.go suffix), never in production builds.

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Eps            float32
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as public entry points do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// ValidateNaNInf_TestOnly reports the numeric policy carried by m.
func ValidateNaNInf_TestOnly(m *Matrix) bool { return m.validateNaNInf }

// ExportedNewFromBuffer exposes newFromBuffer for white-box tests.
var ExportedNewFromBuffer = newFromBuffer

// ExportedValidateFinite exposes validateFinite for white-box tests.
var ExportedValidateFinite = validateFinite

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
