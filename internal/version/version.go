package version

import "fmt"

// Set at build time with -ldflags "-X github.com/redjax/tuxfetch/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	RepoUser = "redjax"
	RepoName = "tuxfetch"
	RepoUrl  = "https://github.com/redjax/tuxfetch"
	Package  = "tuxfetch"
)

// PackageInfo is the build metadata printed by `tuxfetch version`.
type PackageInfo struct {
	PackageName        string
	RepoUrl            string
	RepoUser           string
	RepoName           string
	PackageVersion     string
	PackageCommit      string
	PackageReleaseDate string
}

// GetPackageInfo returns a struct with information about the current package
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		RepoUser:           RepoUser,
		RepoName:           RepoName,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
	}
}

// String is the one-line form: "package: tuxfetch version:dev commit:none date:unknown".
func (p PackageInfo) String() string {
	return fmt.Sprintf("package: %s version:%s commit:%s date:%s",
		p.PackageName, p.PackageVersion, p.PackageCommit, p.PackageReleaseDate)
}
