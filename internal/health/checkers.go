package health

import (
	"context"
	"net/url"
)

// UpstreamModeChecker reports which search backend is active. It never
// contacts the upstream, so probes cost no API quota.
type UpstreamModeChecker struct {
	mode     string
	endpoint string
}

// NewUpstreamModeChecker creates the checker. mode is "mock" or "youtube".
func NewUpstreamModeChecker(mode, endpoint string) *UpstreamModeChecker {
	return &UpstreamModeChecker{mode: mode, endpoint: endpoint}
}

func (c *UpstreamModeChecker) Name() string { return "upstream_mode" }

func (c *UpstreamModeChecker) Check(_ context.Context) CheckResult {
	if c.mode == "mock" {
		return CheckResult{
			Status:  StatusHealthy,
			Message: "mock mode: YOUTUBE_API_KEY not set, serving synthetic results",
		}
	}
	host := c.endpoint
	if u, err := url.Parse(c.endpoint); err == nil && u.Host != "" {
		host = u.Host
	}
	return CheckResult{
		Status:  StatusHealthy,
		Message: "youtube mode: " + host,
	}
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewCheckerFunc wraps fn as a named checker.
func NewCheckerFunc(name string, fn func(ctx context.Context) CheckResult) *CheckerFunc {
	return &CheckerFunc{name: name, fn: fn}
}

func (c *CheckerFunc) Name() string { return c.name }

func (c *CheckerFunc) Check(ctx context.Context) CheckResult { return c.fn(ctx) }
