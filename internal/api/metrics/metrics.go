// Package metrics defines and registers all custom Prometheus metrics for the
// case API. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "caseflow"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "wrong_password", "not_found", "blocked", "invalid_input"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "success", "email_taken", "invalid_input", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// CasesCreatedTotal counts newly created cases.
// Label:
//   - with_image: "true" when the case carried an uploaded attachment
var CasesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cases_created_total",
		Help:      "Total number of cases created, by attachment presence.",
	},
	[]string{"with_image"},
)

// CasesDeletedTotal counts admin case deletions.
var CasesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cases_deleted_total",
		Help:      "Total number of cases deleted by administrators.",
	},
)

// BlockTogglesTotal counts admin block toggles by resulting state.
// Label:
//   - state: "blocked" or "unblocked"
var BlockTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "block_toggles_total",
		Help:      "Total number of user block toggles, by resulting state.",
	},
	[]string{"state"},
)

// UploadsStoredTotal counts case attachments written to the upload store.
var UploadsStoredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_stored_total",
		Help:      "Total number of uploaded case attachments stored.",
	},
)
