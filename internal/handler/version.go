package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"runtime"

	"github.com/osse101/Adventure_Go/internal/content"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string         `json:"version"`
	GoVersion string         `json:"go_version"`
	BuildTime string         `json:"build_time,omitempty"`
	GitCommit string         `json:"git_commit,omitempty"`
	Content   ContentSummary `json:"content"`
}

// ContentSummary counts the loaded catalog entries
type ContentSummary struct {
	Monsters   int `json:"monsters"`
	Attributes int `json:"attributes"`
	Sets       int `json:"sets"`
	Pets       int `json:"pets"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion returns version information about the application
// @Summary Version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(catalog *content.Catalog) http.HandlerFunc {
	var summary ContentSummary
	if catalog != nil {
		summary = ContentSummary{
			Monsters:   len(catalog.Monsters),
			Attributes: len(catalog.Attributes),
			Sets:       len(catalog.Sets),
			Pets:       len(catalog.Pets),
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		info := VersionInfo{
			Version:   getVersionInfo(),
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
			Content:   summary,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(info)
	}
}

// getVersionInfo prefers the build-time value, then $VERSION
func getVersionInfo() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
