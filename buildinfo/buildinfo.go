package buildinfo

import (
	"os"
	"runtime"
	"sync"
	"time"
)

// ServiceName identifies this binary in logs and health responses
const ServiceName = "user-api"

// Set via ldflags, e.g. -X kucukaslan/userapi/buildinfo.Version=v1.2.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var (
	mu        sync.RWMutex
	startTime = time.Now()
)

// Info contains build and runtime information
type Info struct {
	Service   string        `json:"service" example:"user-api"`
	Version   string        `json:"version" example:"v1.0.0"`
	Commit    string        `json:"commit" example:"abc123def456"`
	BuildDate string        `json:"buildDate" example:"2025-11-22T10:00:00Z"`
	GoVersion string        `json:"goVersion" example:"go1.25.4"`
	Hostname  string        `json:"hostname" example:"app-server-01"`
	StartedAt time.Time     `json:"startedAt" example:"2025-11-22T10:00:00Z"`
	Uptime    time.Duration `json:"uptime" swaggertype:"integer" example:"3600000000000"`
}

func GetInfo() Info {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	mu.RLock()
	started := startTime
	mu.RUnlock()

	return Info{
		Service:   ServiceName,
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Hostname:  hostname,
		StartedAt: started,
		Uptime:    time.Since(started),
	}
}

// SetStartTime marks when main began, so uptime excludes package init
func SetStartTime(t time.Time) {
	mu.Lock()
	startTime = t
	mu.Unlock()
}
