//go:build !unix

package platformservice

import "runtime"

func uname() (string, string, string) {
	return runtime.GOOS, "", runtime.GOARCH
}
