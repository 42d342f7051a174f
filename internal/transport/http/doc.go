// Package http provides the chi handlers and router for the report
// server API: summaries, graded records, health, and metrics.
package http
