// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// NewAWSConfig builds the AWS configuration shared by the S3, SNS and SES
// adapters. It returns nil without error unless both the access key id and
// the secret access key are set. Shared config files are not consulted.
func NewAWSConfig(ctx context.Context, values config.Values) (*aws.Config, error) {
	accessKeyID := values.String(config.KeyAccessKeyID)
	secretAccessKey := values.String(config.KeySecretAccessKey)
	if accessKeyID == "" || secretAccessKey == "" {
		return nil, nil
	}

	region := values.String(config.KeyAWSRegion)
	if region == "" {
		region = config.DefaultAWSRegion
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithSharedConfigFiles([]string{}),
		awsconfig.WithSharedCredentialsFiles([]string{}),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingAWSConfig, err)
	}

	return &cfg, nil
}
