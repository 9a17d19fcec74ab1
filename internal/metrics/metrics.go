// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics collects Prometheus metrics of the access gate and exposes
// them for scraping.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is used by the service layer, the workers and the HTTP
// middleware to record gate activity.
type MetricsCollector interface {
	// RecordLoginAttempt counts a finished login. step is the name of the
	// failed check, or "success".
	RecordLoginAttempt(success bool, step string)
	// RecordSessionVerification counts verify-session outcomes by reason.
	RecordSessionVerification(result string)
	RecordAuditDropped()
	RecordAuditWriteFailure()
	RecordSessionsSwept(count int64)
	RecordRateLimited()
	RecordHTTPStatus(statusCode int)
}

// Collector is the Prometheus implementation of [MetricsCollector].
type Collector struct {
	loginAttempts      *prometheus.CounterVec
	verifications      *prometheus.CounterVec
	auditDropped       prometheus.Counter
	auditWriteFailures prometheus.Counter
	sessionsSwept      prometheus.Counter
	rateLimited        prometheus.Counter
	httpStatus         *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "access_gate_login_attempts_total",
			Help: "Login attempts by outcome and deciding step.",
		}, []string{"outcome", "step"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "access_gate_session_verifications_total",
			Help: "Session verifications by result.",
		}, []string{"result"}),
		auditDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "access_gate_audit_dropped_total",
			Help: "Login attempt records dropped because the audit queue was full.",
		}),
		auditWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "access_gate_audit_write_failures_total",
			Help: "Login attempt records the store failed to persist.",
		}),
		sessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "access_gate_sessions_swept_total",
			Help: "Expired sessions deactivated by the sweeper.",
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "access_gate_login_rate_limited_total",
			Help: "Login requests rejected by the per-address rate limit.",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "access_gate_http_responses_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.loginAttempts,
		c.verifications,
		c.auditDropped,
		c.auditWriteFailures,
		c.sessionsSwept,
		c.rateLimited,
		c.httpStatus,
	)

	return c
}

func (c *Collector) RecordLoginAttempt(success bool, step string) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	c.loginAttempts.WithLabelValues(outcome, step).Inc()
}

func (c *Collector) RecordSessionVerification(result string) {
	c.verifications.WithLabelValues(result).Inc()
}

func (c *Collector) RecordAuditDropped() {
	c.auditDropped.Inc()
}

func (c *Collector) RecordAuditWriteFailure() {
	c.auditWriteFailures.Inc()
}

func (c *Collector) RecordSessionsSwept(count int64) {
	c.sessionsSwept.Add(float64(count))
}

func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler returns the HTTP handler serving the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop is a [MetricsCollector] that records nothing.
type Nop struct{}

func (Nop) RecordLoginAttempt(bool, string) {}
func (Nop) RecordSessionVerification(string) {}
func (Nop) RecordAuditDropped() {}
func (Nop) RecordAuditWriteFailure() {}
func (Nop) RecordSessionsSwept(int64) {}
func (Nop) RecordRateLimited() {}
func (Nop) RecordHTTPStatus(int) {}
