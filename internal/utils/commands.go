package utils

import "os/exec"

// IsCommandAvailable checks if a command is available in the PATH.
func IsCommandAvailable(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// Which returns the resolved path of cmd, or "" when it is not on PATH.
func Which(cmd string) string {
	p, err := exec.LookPath(cmd)
	if err != nil {
		return ""
	}
	return p
}
