// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/url"

	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/MKhiriev/hyperdrive/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// EmailProvider names the service that sends verification and password
// reset emails.
type EmailProvider string

const (
	EmailMailgun EmailProvider = "mailgun"
	EmailSES     EmailProvider = "ses"
)

// EmailAdapter describes the email adapter of the API server. APIKey and
// Domain are set for mailgun, Region for SES.
type EmailAdapter struct {
	Provider    EmailProvider
	FromAddress string
	APIKey      string
	Domain      string
	Region      string
}

// Mailgun wins over SES; SES needs AWS credentials.
func newEmailAdapter(awsCfg *aws.Config, values config.Values, serverURL *url.URL, log *logger.Logger) *EmailAdapter {
	from := values.String(config.KeySystemEmailAddress)

	if apiKey := values.String(config.KeyMailgunAPIKey); apiKey != "" {
		domain := values.String(config.KeyMailgunDomain)
		if domain == "" && serverURL != nil {
			domain = serverURL.Hostname()
		}
		return &EmailAdapter{
			Provider:    EmailMailgun,
			FromAddress: from,
			APIKey:      apiKey,
			Domain:      domain,
		}
	}

	if awsCfg != nil {
		return &EmailAdapter{
			Provider:    EmailSES,
			FromAddress: from,
			Region:      awsCfg.Region,
		}
	}

	log.Warn().Msg("No email adapter was configured.")
	return nil
}
