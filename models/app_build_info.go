// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and exposed by
// the root endpoint for diagnostics and release traceability.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are replaced with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

func orNotAvailable(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// AppInfo is the static service metadata published at the root endpoint.
type AppInfo struct {
	Message string    `json:"message"`
	Version string    `json:"version"`
	Docs    string    `json:"docs"`
	Health  string    `json:"health"`
	Build   BuildInfo `json:"build"`
}

// BuildInfo is the JSON view of [AppBuildInfo].
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo converts a into its JSON view.
func NewBuildInfo(a AppBuildInfo) BuildInfo {
	return BuildInfo{
		Version: a.BuildVersion(),
		Date:    a.BuildDate(),
		Commit:  a.BuildCommit(),
	}
}
