// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by [BcryptHasher.Compare] when the password
// does not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// BcryptHasher hashes and verifies admin passwords with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given cost. A cost outside
// bcrypt's accepted range falls back to bcrypt.DefaultCost.
//
// Example usage:
//
//	hasher := utils.NewBcryptHasher(bcrypt.DefaultCost)
//	hash, err := hasher.Hash("admin")
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
//
// bcrypt only considers the first 72 bytes; longer inputs are rejected by the
// library and reported as an error.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// Compare checks password against a hash produced by [BcryptHasher.Hash].
// A mismatch is reported as [ErrPasswordMismatch]; any other failure (e.g. a
// malformed hash) is wrapped and returned as-is.
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return fmt.Errorf("error comparing password hash: %w", err)
}
