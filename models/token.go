// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an admin session JWT.
//
// SignedString holds the compact serialized form stored in the session
// cookie. AdminID is the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`

	AdminID int64 `json:"-"`
}

// ExpiresAt returns the "exp" claim, or the zero time if the token carries
// none.
func (t *Token) ExpiresAt() time.Time {
	if t.Token == nil || t.Claims == nil {
		return time.Time{}
	}
	exp, err := t.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
