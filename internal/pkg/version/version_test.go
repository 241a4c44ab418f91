// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package version

import (
	"testing"
	"time"

	"github.com/shoenig/test/must"
)

func TestVersionInfo_VersionNumber(t *testing.T) {
	testCases := []struct {
		name string
		info VersionInfo
		exp  string
	}{
		{name: "release", info: VersionInfo{Version: "1.2.3"}, exp: "1.2.3"},
		{name: "prerelease", info: VersionInfo{Version: "1.2.3", VersionPrerelease: "dev"}, exp: "1.2.3-dev"},
		{name: "metadata", info: VersionInfo{Version: "1.2.3", VersionPrerelease: "rc.1", VersionMetadata: "ent"}, exp: "1.2.3-rc.1+ent"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			must.Eq(t, tc.exp, tc.info.VersionNumber())
		})
	}
}

func TestVersionInfo_FullVersionNumber(t *testing.T) {
	info := &VersionInfo{
		Version:   "0.1.0",
		Revision:  "abcdef0123456789",
		BuildDate: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	must.Eq(t, "flagparse v0.1.0\nBuildDate 2025-01-02T03:04:05Z\nRevision abcdef0123456789", info.FullVersionNumber(true))
	must.Eq(t, "flagparse v0.1.0\nBuildDate 2025-01-02T03:04:05Z", info.FullVersionNumber(false))
}

func TestGetVersion_gitDescribe(t *testing.T) {
	t.Cleanup(func() { GitDescribe, GitCommit, BuildDate = "", "", "" })

	GitDescribe = "0.2.0-3-gabcdef0"
	GitCommit = "abcdef0123456789"
	BuildDate = "not a date"

	info := GetVersion()
	must.Eq(t, "0.2.0-3-gabcdef0", info.VersionNumber())
	must.True(t, info.BuildDate.IsZero())
	must.Eq(t, "v0.2.0-3-gabcdef0 (abcdef01)", HumanVersion())
}
