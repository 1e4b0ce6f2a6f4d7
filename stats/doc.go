// Package stats measures frame rate and how render time is split between
// backends.
package stats
