// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an owner session token issued by the hosted backend on profile
// upsert. The subject claim is the owner id.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// OwnerID caches the parsed subject claim.
	OwnerID string `json:"-"`
}

// GetOwnerID returns the subject claim, which must be non-empty.
func (t *Token) GetOwnerID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting owner id from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("token has empty subject")
	}
	return sub, nil
}

func (t *Token) String() string {
	return t.SignedString
}
