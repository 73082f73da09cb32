// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "github.com/MKhiriev/hyperdrive/internal/config"

// ProviderFacebook is the OAuth provider name for Facebook login.
const ProviderFacebook = "facebook"

// OAuthProvider holds the settings of one OAuth provider.
type OAuthProvider struct {
	AppIDs []string `json:"appIds"`
}

func newOAuth(values config.Values) map[string]OAuthProvider {
	ids := values.Strings(config.KeyFacebookAppIDs)
	if ids == nil {
		return nil
	}

	return map[string]OAuthProvider{
		ProviderFacebook: {AppIDs: ids},
	}
}
