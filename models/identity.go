// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ExternalIdentity is what the authentication provider hands over after a
// successful sign-in. Only ID is mandatory.
type ExternalIdentity struct {
	ID        string  `json:"external_id"`
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Empty reports whether the identity carries no usable external id.
func (e ExternalIdentity) Empty() bool {
	return e.ID == ""
}

// OwnerProfile is the remote profile row keyed by external id. OwnerID is the
// key that partitions remote transactions between users.
type OwnerProfile struct {
	OwnerID      string    `json:"owner_id"`
	ExternalID   string    `json:"external_id"`
	Name         *string   `json:"name,omitempty"`
	Email        *string   `json:"email,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	LastSignInAt time.Time `json:"last_sign_in_at"`
}

// ProfileResponse is returned by the profile upsert endpoint.
type ProfileResponse struct {
	OwnerID string `json:"owner_id"`
}
