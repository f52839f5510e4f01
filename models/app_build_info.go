// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable stands in for build fields the linker did not stamp.
const NotAvailable = "N/A"

// AppBuildInfo is the linker-stamped identity of a go-user-tags binary. The
// server prints it at startup and serves the version from /api/version
// when no VERSION is configured. The terminal client shows it on the about
// screen.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Blank values are kept unset.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

// Stamped reports whether a version was injected at build time.
func (a AppBuildInfo) Stamped() bool {
	return a.version != ""
}

// BuildVersion returns the release version or [NotAvailable].
func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.version)
}

// BuildDate returns the build timestamp or [NotAvailable].
func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.date)
}

// BuildCommit returns the commit hash or [NotAvailable].
func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.commit)
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
