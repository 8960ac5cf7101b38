// Package entity defines the JSON response envelopes used by the web layer.
package entity

// Msg is the standard response body for status-only and error replies.
type Msg struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginUser is the identity data returned to the client after login.
// Never carries the password hash.
type LoginUser struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Success bool      `json:"success"`
	User    LoginUser `json:"user"`
}
