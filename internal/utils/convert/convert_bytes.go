package utils

// BytesToMebibytes converts a byte count to whole MiB (bytes / 2^20), truncating.
func BytesToMebibytes(bytes uint64) uint64 {
	return bytes >> 20
}
