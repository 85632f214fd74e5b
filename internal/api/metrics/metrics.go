// Package metrics defines and registers the custom Prometheus metrics for
// the identity API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default
// registry via promauto; the scrape endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "identity"

// LoginsTotal counts credential exchanges at /token/pair.
// Label:
//   - result: "success", "bad_credentials", "inactive" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests the gate turned away before any
// handler ran.
// Label:
//   - reason: "missing_header", "bad_scheme" or "invalid_token"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authentication gate.",
	},
	[]string{"reason"},
)

// RoleRejectionsTotal counts authenticated requests that failed a role check.
// Label:
//   - route: the Echo route pattern (e.g. "/users/:id")
var RoleRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_rejections_total",
		Help:      "Total number of requests rejected for insufficient role.",
	},
	[]string{"route"},
)

// JournalWritesTotal counts accepted journal append operations.
var JournalWritesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "journal_writes_total",
		Help:      "Total number of lines appended to the journal.",
	},
)
