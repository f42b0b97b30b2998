// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo is the linker-injected metadata of a signup binary. The
// version doubles as the fallback answer of GET /api/version/ when no
// APP_VERSION is configured.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the injected version, "" when none was set.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders "version (commit, date)" with N/A for missing parts.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", orUnknown(a.buildVersion), orUnknown(a.buildCommit), orUnknown(a.buildDate))
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuildValue
	}
	return s
}
