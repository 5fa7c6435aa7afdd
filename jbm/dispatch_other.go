//go:build !amd64 && !arm64

package jbm

func init() {
	// Other architectures use the unfused path for now. ppc64le, s390x and
	// riscv64 have hardware FMA as well; they can opt in once x/sys/cpu
	// exposes a matching feature bit.
	SetFMA(false)
}
