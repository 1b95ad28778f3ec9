// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, session token
// generation and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AdminIDCtxKey is the key used to store the authenticated admin identifier
// in the request context. It is set by the session middleware only when the
// request carries a valid session cookie.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AdminIDCtxKey, int64(1))
var AdminIDCtxKey = contextKey("adminID")

// TraceIDCtxKey is the key under which the request trace id is stored.
var TraceIDCtxKey = contextKey("traceID")

// GetAdminIDFromContext retrieves the admin identifier from the context.
//
// Returns the admin ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetAdminIDFromContext(ctx context.Context) (int64, bool) {
	adminID, ok := ctx.Value(AdminIDCtxKey).(int64)
	return adminID, ok
}

// GetTraceIDFromContext returns the trace id set by the tracing middleware,
// or an empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
