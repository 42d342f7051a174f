// Package contracts holds types and constants shared across process
// boundaries.
package contracts

import (
	"fmt"
	"runtime"
)

const (
	// Version is the current version of the application
	Version = "1.0.0"

	// DataFormatVersion is the version of the dataset CSV layout
	DataFormatVersion = "v1"

	// APIVersion is the version of the report API
	APIVersion = "v1"
)

// UserAgent returns the HTTP user agent string for outbound requests.
func UserAgent() string {
	return fmt.Sprintf("scorecli/%s (%s; %s)", Version, runtime.GOOS, runtime.GOARCH)
}

// VersionString returns the full human-readable version.
func VersionString() string {
	return fmt.Sprintf("scorecli %s (api %s, data %s)", Version, APIVersion, DataFormatVersion)
}
