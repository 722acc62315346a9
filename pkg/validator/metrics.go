/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stagecheck_validation_duration_seconds",
			Help:    "Duration of a staging configuration validation pass in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	validationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stagecheck_validation_total",
			Help: "Total number of validation passes",
		},
		[]string{"status"}, // pass or fail
	)

	validationFindingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stagecheck_validation_findings_total",
			Help: "Total number of findings reported by validation passes",
		},
		[]string{"severity"}, // error, warning, missing_critical, placeholder
	)
)

func observe(res *ValidationResult) {
	validationDuration.Observe(res.Summary.Duration.Seconds())
	validationTotal.WithLabelValues(string(res.Summary.Status)).Inc()
	validationFindingsTotal.WithLabelValues("error").Add(float64(res.Summary.Errors))
	validationFindingsTotal.WithLabelValues("warning").Add(float64(res.Summary.Warnings))
	validationFindingsTotal.WithLabelValues("missing_critical").Add(float64(res.Summary.MissingCritical))
	validationFindingsTotal.WithLabelValues("placeholder").Add(float64(res.Summary.Placeholders))
}
