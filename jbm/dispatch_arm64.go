//go:build arm64

package jbm

import "golang.org/x/sys/cpu"

func init() {
	// Check for JBM_NO_FMA environment variable first
	if NoFMAEnv() {
		SetFMA(false)
		return
	}

	// FMADD is part of the ARMv8-A base floating-point ISA.
	// cpu.ARM64.HasFP is always true for ARMv8+; we check it for consistency.
	SetFMA(cpu.ARM64.HasFP)
}
