// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"strings"

	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/MKhiriev/hyperdrive/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
)

const apnsSandboxMarker = "/APNS_SANDBOX"

// SNSPlatform is one push platform backed by an SNS platform application.
type SNSPlatform struct {
	ARN        string
	Production bool
	BundleID   string
}

// PushAdapter describes push delivery through AWS SNS.
type PushAdapter struct {
	Region  string
	Android *SNSPlatform
	IOS     *SNSPlatform
}

func newPushAdapter(awsCfg *aws.Config, values config.Values, log *logger.Logger) *PushAdapter {
	if awsCfg == nil {
		return nil
	}

	push := &PushAdapter{Region: awsCfg.Region}

	if arn := values.String(config.KeySNSFCM); arn != "" {
		push.Android = &SNSPlatform{ARN: arn}
	} else {
		log.Warn().Msg("Android notifications not configured.")
	}

	if arn := values.String(config.KeySNSAPNS); arn != "" {
		push.IOS = &SNSPlatform{
			ARN:        arn,
			Production: !strings.Contains(arn, apnsSandboxMarker),
			BundleID:   values.String(config.KeyIOSBundleID),
		}
	} else {
		log.Warn().Msg("APNS not configured.")
	}

	return push
}
