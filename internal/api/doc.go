// Package api contains the HTTP handlers, request/response models and error
// mapping for the pulsecheck REST API.
package api
