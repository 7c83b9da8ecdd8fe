// Package version holds build identification, overridable at link time:
//
//	go build -ldflags "-X helpdesk/internal/shared/version.Version=v1.2.3"
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
)
