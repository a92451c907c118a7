// Package metrics defines and registers all custom Prometheus metrics for the
// pixelgram account API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pixelgram"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "invalid", "password_mismatch", "duplicate", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "not_found", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRefreshesTotal counts access-token refreshes.
// Label:
//   - result: "success", "revoked", or "invalid"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh-token exchanges, by result.",
	},
	[]string{"result"},
)

// ── Relation metrics ──────────────────────────────────────────────────────────

// FollowTogglesTotal counts follow-relation mutations.
// Label:
//   - action: "followed" or "unfollowed"
var FollowTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "follow_toggles_total",
		Help:      "Total number of follow toggles, by resulting action.",
	},
	[]string{"action"},
)

// ── Presentation metrics ──────────────────────────────────────────────────────

// MediaResolutionsTotal counts profile-picture URL resolutions.
// Label:
//   - result: "resolved" or "error"
var MediaResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_resolutions_total",
		Help:      "Total number of profile picture URL resolutions, by result.",
	},
	[]string{"result"},
)
