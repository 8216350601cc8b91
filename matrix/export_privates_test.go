// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the internal options snapshot.
//
// Purpose:
//   - Expose a read-only view of resolved Options to matrix_test ONLY.
//   - Compiled with tests only (_test.go), invisible in production builds.

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	CopyInput    bool
	CapacityHint int
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		CopyInput:    o.copyInput,
		CapacityHint: o.capacityHint,
	}
}
