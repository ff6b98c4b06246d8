package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker is always healthy. It serves deployments without
// external dependencies, e.g. file backed content.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(context.Context) bool {
	return true
}

// HealthCheckers is healthy when every member is. An empty set is healthy.
type HealthCheckers []HealthChecker

func (hcs HealthCheckers) Healthy(ctx context.Context) bool {
	for _, hc := range hcs {
		if !hc.Healthy(ctx) {
			return false
		}
	}
	return true
}
