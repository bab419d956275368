// Package domain contains shared domain types used across entity sub-packages.
// The Task entity lives in domain/task. This root package holds the sentinel
// errors and the structured validation error shared by every layer.
package domain
