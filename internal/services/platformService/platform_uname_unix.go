//go:build unix

package platformservice

import "golang.org/x/sys/unix"

// uname returns sysname, release and machine, or empty strings on failure.
func uname() (string, string, string) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", "", ""
	}

	return unix.ByteSliceToString(u.Sysname[:]),
		unix.ByteSliceToString(u.Release[:]),
		unix.ByteSliceToString(u.Machine[:])
}
