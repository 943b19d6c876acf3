package version

import "testing"

func TestPackageInfoString(t *testing.T) {
	info := PackageInfo{PackageName: "tuxfetch", PackageVersion: "1.2.0", PackageCommit: "abc123", PackageReleaseDate: "2026-01-01"}

	want := "package: tuxfetch version:1.2.0 commit:abc123 date:2026-01-01"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
