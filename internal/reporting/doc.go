// Package reporting renders test results for the plain CLI listing, the
// summary table and JSON report files. It also turns runner progress into
// live output, either as text lines or as messages for the dashboard.
package reporting
