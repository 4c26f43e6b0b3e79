//go:build !unix

package probe

import "runtime"

func kernelBuild() (string, string, error) {
	return runtime.Version(), "", nil
}
