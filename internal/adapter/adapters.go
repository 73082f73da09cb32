// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/MKhiriev/hyperdrive/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// Adapters is the set of backend adapter descriptors derived from the
// configuration. Nil fields are not configured.
type Adapters struct {
	AWS   *aws.Config
	Cache *CacheAdapter
	Files FilesAdapter
	Push  *PushAdapter
	Email *EmailAdapter
	OAuth map[string]OAuthProvider
}

// Configure derives the adapters from resolved and derived values. Missing
// optional services are logged as warnings; only malformed values fail.
func Configure(ctx context.Context, values config.Values, serverURL *url.URL, log *logger.Logger) (*Adapters, error) {
	awsCfg, err := NewAWSConfig(ctx, values)
	if err != nil {
		return nil, err
	}

	adapters := &Adapters{AWS: awsCfg}

	if redisURL := values.String(config.KeyRedisURL); redisURL != "" {
		cache, err := NewCacheAdapter(redisURL)
		if err != nil {
			return nil, err
		}
		adapters.Cache = cache
	}

	adapters.Files = newFilesAdapter(awsCfg, values)
	adapters.Push = newPushAdapter(awsCfg, values, log)
	adapters.Email = newEmailAdapter(awsCfg, values, serverURL, log)
	adapters.OAuth = newOAuth(values)

	return adapters, nil
}

// AWSConfigured reports whether AWS credentials were provided.
func (a *Adapters) AWSConfigured() bool {
	return a.AWS != nil
}

// S3Configured reports whether files are stored on S3.
func (a *Adapters) S3Configured() bool {
	return a.AWSConfigured() && a.Files.Storage == FileStorageS3
}
