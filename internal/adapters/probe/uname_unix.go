//go:build unix

package probe

import "golang.org/x/sys/unix"

func kernelBuild() (string, string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), unix.ByteSliceToString(uts.Version[:]), nil
}
