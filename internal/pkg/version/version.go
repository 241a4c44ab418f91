// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package version reports which flagparse build is running. The variables
// below are set at link time with -ldflags "-X ...".
package version

import (
	"fmt"
	"strings"
	"time"
)

var (
	// BuildDate is the commit time of the build, RFC3339.
	BuildDate string

	// GitCommit is the full revision. GitDescribe, when set, replaces
	// Version and clears the prerelease tag.
	GitCommit   string
	GitDescribe string

	Version           = "0.1.0"
	VersionPrerelease = "dev"
	VersionMetadata   = ""
)

// shortRevisionLen is how much of the revision HumanVersion shows.
const shortRevisionLen = 8

// VersionInfo is a resolved snapshot of the link-time variables.
type VersionInfo struct {
	BuildDate         time.Time
	Revision          string
	Version           string
	VersionPrerelease string
	VersionMetadata   string
}

// GetVersion resolves the link-time variables. An unparsable BuildDate
// leaves the zero time.
func GetVersion() *VersionInfo {
	info := &VersionInfo{
		Revision:          GitCommit,
		Version:           Version,
		VersionPrerelease: VersionPrerelease,
		VersionMetadata:   VersionMetadata,
	}
	if GitDescribe != "" {
		info.Version, info.VersionPrerelease = GitDescribe, ""
	}
	info.BuildDate, _ = time.Parse(time.RFC3339, BuildDate)
	return info
}

// VersionNumber renders semver style: version[-prerelease][+metadata].
func (v *VersionInfo) VersionNumber() string {
	var b strings.Builder
	b.WriteString(v.Version)
	if v.VersionPrerelease != "" {
		b.WriteString("-" + v.VersionPrerelease)
	}
	if v.VersionMetadata != "" {
		b.WriteString("+" + v.VersionMetadata)
	}
	return b.String()
}

// FullVersionNumber is the multi-line form given to --version: the name
// and version, then the build date and, with rev, the revision when known.
func (v *VersionInfo) FullVersionNumber(rev bool) string {
	lines := []string{"flagparse v" + v.VersionNumber()}
	if !v.BuildDate.IsZero() {
		lines = append(lines, "BuildDate "+v.BuildDate.Format(time.RFC3339))
	}
	if rev && v.Revision != "" {
		lines = append(lines, "Revision "+v.Revision)
	}
	return strings.Join(lines, "\n")
}

// HumanVersion is the one-line form printed by the version command.
func HumanVersion() string {
	v := GetVersion()
	out := "v" + v.VersionNumber()
	if rev := v.Revision; rev != "" {
		if len(rev) > shortRevisionLen {
			rev = rev[:shortRevisionLen]
		}
		out += fmt.Sprintf(" (%s)", rev)
	}
	return out
}
