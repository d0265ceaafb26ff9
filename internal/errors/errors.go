// Package errors defines the structured error payload returned by every
// failing endpoint. Domain sentinels live next to the services that raise
// them; handlers translate sentinels into an ErrorResponse plus a status code.
package errors

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
