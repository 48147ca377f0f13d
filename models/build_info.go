// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildInfo is injected with -ldflags and reported by the version endpoint.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo replaces empty values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return BuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}
