package v1

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/salary-report/backend/internal/finance"
)

const (
	outcomeSuccess = "success"
	outcomeInvalid = "invalid"
)

var calculationCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "calculations_total",
		Help: "How many calculations were requested, partitioned by outcome.",
	},
	[]string{"outcome"},
)

var validationIssueCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "validation_issues_total",
		Help: "How many input fields were rejected, partitioned by field and reason.",
	},
	[]string{"field", "reason"},
)

// Collectors returns the Prometheus collectors of the v1 API.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		calculationCount,
		validationIssueCount,
	}
}

func observeValidationError(err *finance.ValidationError) {
	calculationCount.WithLabelValues(outcomeInvalid).Inc()
	for _, issue := range err.Issues {
		validationIssueCount.WithLabelValues(issue.Field.String(), string(issue.Reason)).Inc()
	}
}
