package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/poputchik/internal/pkg/logger"
	"github.com/piresc/poputchik/internal/utils"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName
	if version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}
	buildInfo.Hostname = hostname

	return func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// Checker reports whether a dependency can serve requests
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report is the readiness response
type Report struct {
	Status       string                    `json:"status"`
	Service      string                    `json:"service"`
	Timestamp    time.Time                 `json:"timestamp"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// Failures lists the unhealthy dependencies as "name: error", sorted by name
func (r Report) Failures() string {
	names := make([]string, 0, len(r.Dependencies))
	for name, dep := range r.Dependencies {
		if dep.Status != StatusHealthy {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	failures := make([]string, 0, len(names))
	for _, name := range names {
		failures = append(failures, name+": "+r.Dependencies[name].Error)
	}
	return strings.Join(failures, "; ")
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Service runs the registered dependency checks
type Service struct {
	name     string
	timeout  time.Duration
	checkers map[string]Checker
}

// NewService creates a health service for serviceName
func NewService(serviceName string) *Service {
	return &Service{
		name:     serviceName,
		timeout:  3 * time.Second,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a dependency check under name
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs every registered check
func (s *Service) Check(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report := Report{
		Status:       StatusHealthy,
		Service:      s.name,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(s.checkers)),
	}

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.checkers[name].CheckHealth(ctx); err != nil {
			logger.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			report.Dependencies[name] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			report.Status = StatusUnhealthy
			continue
		}
		report.Dependencies[name] = DependencyInfo{Status: StatusHealthy}
	}

	logger.Debug("Health checked",
		logger.String("service", s.name),
		logger.Bool("healthy", report.Status == StatusHealthy),
		logger.Int("dependencies", len(names)))

	return report
}

// RegisterHealthEndpoints registers the health check endpoints.
// /ready runs the dependency checks of svc and answers 503 with the failed
// dependencies in the error envelope. A nil svc is always ready.
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	e.GET("/ping", NewPingHandler(serviceName, version))

	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", ok)
	e.GET("/healthz", ok)

	e.GET("/ready", func(c echo.Context) error {
		if svc == nil {
			return ok(c)
		}
		report := svc.Check(c.Request().Context())
		if report.Status != StatusHealthy {
			return utils.ServiceUnavailableResponse(c, report.Failures())
		}
		return c.JSON(http.StatusOK, report)
	})
}
