// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-ledger-sync/models"
)

var (
	ErrInvalidTokenParams     = errors.New("invalid params for generating JWT token")
	ErrEmptyTokenSubject      = errors.New("token has empty subject")
	ErrInvalidAuthorizationHd = errors.New("invalid authorization header")
)

// GenerateJWTToken signs an HS256 token whose subject is ownerID.
func GenerateJWTToken(issuer, ownerID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || ownerID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   ownerID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: signed, OwnerID: ownerID}, nil
}

// ValidateAndParseJWTToken checks the signature, issuer and expiry of
// tokenString and returns the token with OwnerID populated.
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	ownerID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if ownerID == "" {
		return models.Token{}, ErrEmptyTokenSubject
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: parsed.RegisteredClaims,
		SignedString:     tokenString,
		OwnerID:          ownerID,
	}, nil
}

// ParseBearerToken extracts the token from "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrInvalidAuthorizationHd
	}
	return strings.TrimSpace(token), nil
}

// ParseOwnerIDFromJWT reads the subject without verifying the signature.
// The client uses it to learn its owner id from the token the backend
// returned; the backend never trusts it.
func ParseOwnerIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", ErrEmptyTokenSubject
	}
	return sub, nil
}
