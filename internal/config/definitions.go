// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Definition describes one configuration option. The same record drives
// resolution, the CLI help output and the scaffolded config file.
type Definition struct {
	// Name is the key of the option in the resolved [Values].
	Name string
	// Env is the environment variable providing the value.
	Env string
	// Default is used when neither an override nor Env is set.
	Default Default
	// Transform, when set, is applied once to the first non-empty value.
	Transform Parser
	// Help is a one-line description of the option.
	Help string
}

// Definitions is the immutable, ordered option table.
type Definitions struct {
	order  []string
	byName map[string]Definition
	byFold map[string]string
}

// NewDefinitions builds a table from defs. Duplicate names panic since the
// table is a programming-time constant.
func NewDefinitions(defs ...Definition) Definitions {
	t := Definitions{
		order:  make([]string, 0, len(defs)),
		byName: make(map[string]Definition, len(defs)),
		byFold: make(map[string]string, len(defs)),
	}
	for _, d := range defs {
		if _, dup := t.byName[d.Name]; dup {
			panic(fmt.Sprintf("config: duplicate option %q", d.Name))
		}
		t.order = append(t.order, d.Name)
		t.byName[d.Name] = d
		t.byFold[strings.ToLower(d.Name)] = d.Name
	}
	return t
}

// Names returns option names in declaration order.
func (t Definitions) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// SortedNames returns option names in lexical order, as shown in help.
func (t Definitions) SortedNames() []string {
	out := t.Names()
	sort.Strings(out)
	return out
}

// Len returns the number of options.
func (t Definitions) Len() int {
	return len(t.order)
}

// Lookup returns the definition for name.
func (t Definitions) Lookup(name string) (Definition, error) {
	d, ok := t.byName[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	return d, nil
}

// Canonical maps a case-insensitive key (as produced by config file
// decoders) to the declared option name.
func (t Definitions) Canonical(key string) (string, bool) {
	if _, ok := t.byName[key]; ok {
		return key, true
	}
	name, ok := t.byFold[strings.ToLower(key)]
	return name, ok
}

// Each calls fn for every definition in declaration order.
func (t Definitions) Each(fn func(Definition)) {
	for _, name := range t.order {
		fn(t.byName[name])
	}
}

// Option names referenced outside the table.
const (
	KeyAppName              = "appName"
	KeyAppID                = "appId"
	KeyMasterKey            = "masterKey"
	KeyRestAPIKey           = "restAPIKey"
	KeyClientKey            = "clientKey"
	KeyJavascriptKey        = "javascriptKey"
	KeyWebhookKey           = "webhookKey"
	KeyParseMount           = "parseMount"
	KeyServerHost           = "serverHost"
	KeyServerURL            = "serverURL"
	KeyDatabaseURI          = "databaseURI"
	KeyCloud                = "cloud"
	KeyPublicServerURL      = "publicServerURL"
	KeyStartLiveQueryServer = "startLiveQueryServer"
	KeyCluster              = "cluster"
	KeyDashboardMount       = "dashboardMount"
	KeyDashboardUser        = "dashboardUser"
	KeyDashboardPassword    = "dashboardPassword"
	KeyIncomingMount        = "incomingMount"
	KeyConfigKey            = "configKey"
	KeyPort                 = "port"
	KeyRedisURL             = "redisURL"
	KeyVerbose              = "verbose"
	KeyMailgunAPIKey        = "mailgunAPIKey"
	KeyMailgunDomain        = "mailgunDomain"
	KeyAccessKeyID          = "accessKeyId"
	KeySecretAccessKey      = "secretAccessKey"
	KeyAWSRegion            = "awsRegion"
	KeyS3Bucket             = "s3Bucket"
	KeyS3BucketPrefix       = "s3BucketPrefix"
	KeyS3BaseURL            = "s3BaseURL"
	KeyS3DirectAccess       = "s3DirectAccess"
	KeyS3ServerSideEnc      = "s3ServerSideEncryption"
	KeyS3GlobalCacheControl = "s3GlobalCacheControl"
	KeySNSAPNS              = "snsAPNS"
	KeySNSFCM               = "snsFCM"
	KeyIOSBundleID          = "iosBundleId"
	KeyFacebookAppIDs       = "facebookAppIds"
	KeyStaticFilesPath      = "staticFilesPath"
	KeySystemEmailAddress   = "systemEmailAddress"
	KeyPublishEnvKeys       = "publishEnvKeys"
	KeyMetricsMount         = "metricsMount"
)

const (
	// DefaultPort is used when PORT is not set.
	DefaultPort = 1337
	// DefaultAWSRegion is used when AWS_REGION is not set.
	DefaultAWSRegion = "us-east-1"
)

// DefaultDefinitions returns the option table of the server. Secret keys
// that are not configured get random values generated once per call; the
// REST, client, javascript and webhook keys share one generated value.
func DefaultDefinitions() Definitions {
	sharedKey := RandomKey(10)

	return NewDefinitions(
		Definition{
			Name:    KeyAppName,
			Env:     "PARSE_SERVER_APP_NAME",
			Default: Computed(defaultAppName),
			Help:    "The Application name.",
		},
		Definition{
			Name:    KeyAppID,
			Env:     "PARSE_SERVER_APPLICATION_ID",
			Default: Static(RandomKey(10)),
			Help:    "The Parse Application ID",
		},
		Definition{
			Name:    KeyMasterKey,
			Env:     "PARSE_SERVER_MASTER_KEY",
			Default: Static(RandomKey(12)),
			Help:    "The Parse Master Key",
		},
		Definition{
			Name:    KeyRestAPIKey,
			Env:     "PARSE_SERVER_REST_API_KEY",
			Default: Static(sharedKey),
			Help:    "The key for REST clients to use.",
		},
		Definition{
			Name:    KeyClientKey,
			Env:     "PARSE_SERVER_CLIENT_KEY",
			Default: Static(sharedKey),
			Help:    "The key for mobile clients to use.",
		},
		Definition{
			Name:    KeyJavascriptKey,
			Env:     "PARSE_SERVER_JAVASCRIPT_KEY",
			Default: Static(sharedKey),
			Help:    "The key for web clients to use.",
		},
		Definition{
			Name:    KeyWebhookKey,
			Env:     "PARSE_SERVER_WEBHOOK_KEY",
			Default: Static(sharedKey),
			Help:    "The key to use when authenticating cloud code webhook requests.",
		},
		Definition{
			Name:      KeyParseMount,
			Env:       "PARSE_SERVER_MOUNT_PATH",
			Default:   Static("/parse"),
			Transform: MountPathParser,
			Help:      "The mount path for the Parse Server.",
		},
		Definition{
			Name:    KeyServerHost,
			Env:     "SERVER_HOSTNAME",
			Default: Computed(defaultServerHost),
			Help:    "The public server hostname (ex. myapp.server.com).",
		},
		Definition{
			Name: KeyServerURL,
			Env:  "PARSE_SERVER_URL",
			Help: "The publicly accessible server url for the api mount point (ex. http://localhost:1337/parse)",
		},
		Definition{
			Name:    KeyDatabaseURI,
			Env:     "DATABASE_URI",
			Default: Computed(defaultDatabaseURI),
			Help:    "The database url for either MongoDB or PostgreSQL.",
		},
		Definition{
			Name:      KeyCloud,
			Env:       "PARSE_SERVER_CLOUD",
			Transform: AppendPathParser,
			Help:      "The relative path for the cloudcode main.js file. (ex. ./cloud/main.js)",
		},
		Definition{
			Name:    KeyPublicServerURL,
			Env:     "PARSE_PUBLIC_SERVER_URL",
			Default: Computed(defaultPublicServerURL),
			Help:    "The publicly accessible URL for this Parse server. Required for password reset.",
		},
		Definition{
			Name:      KeyStartLiveQueryServer,
			Env:       "PARSE_SERVER_START_LIVE_QUERY_SERVER",
			Default:   Static(false),
			Transform: BooleanParser,
			Help:      "Enables the live query server.",
		},
		Definition{
			Name:      KeyCluster,
			Env:       "PARSE_SERVER_CLUSTER",
			Default:   Static(true),
			Transform: NumberOrBoolParser,
			Help:      "Run with cluster, optionally set the number of processes, defaults to the number of CPUs.",
		},
		Definition{
			Name:      KeyDashboardMount,
			Env:       "DASHBOARD_MOUNT",
			Default:   Static("/dashboard"),
			Transform: MountPathParser,
			Help:      "The mount path to access the dashboard. Set to '-' to disable.",
		},
		Definition{
			Name:    KeyDashboardUser,
			Env:     "DASHBOARD_USER",
			Default: Static("admin"),
			Help:    "The username to login to the dashboard.",
		},
		Definition{
			Name:    KeyDashboardPassword,
			Env:     "DASHBOARD_PASSWORD",
			Default: Static("admin"),
			Help:    "The password to login to the dashboard.",
		},
		Definition{
			Name:      KeyIncomingMount,
			Env:       "INCOMING_MOUNT",
			Default:   Static("/incoming"),
			Transform: MountPathParser,
			Help:      "The mount location for incoming webhooks to be routed as cloud code functions. Set to '-' to disable.",
		},
		Definition{
			Name: KeyConfigKey,
			Env:  "CONFIG_KEY",
			Help: "A pseudorandom key used to expose the server configuration at '/CONFIG_KEY'. Defaults to the master key. Set to '-' to disable.",
		},
		Definition{
			Name:      KeyPort,
			Env:       "PORT",
			Default:   Static(fmt.Sprint(DefaultPort)),
			Transform: NumberParser,
			Help:      "The port the server should listen on.",
		},
		Definition{
			Name: KeyRedisURL,
			Env:  "REDIS_URL",
			Help: "The redis server URL to enable caching and possible job queues. Set to 'default' for " + DefaultRedisURL + ".",
		},
		Definition{
			Name:      KeyVerbose,
			Env:       "VERBOSE",
			Default:   Static(false),
			Transform: BooleanParser,
			Help:      "Whether to increase verbosity on Parse Server.",
		},
		Definition{
			Name: KeyMailgunAPIKey,
			Env:  "MAILGUN_API_KEY",
			Help: "Your Mailgun API key.",
		},
		Definition{
			Name: KeyMailgunDomain,
			Env:  "MAILGUN_DOMAIN",
			Help: "The domain setup in Mailgun.",
		},
		Definition{
			Name: KeyAccessKeyID,
			Env:  "AWS_ACCESS_KEY_ID",
			Help: "Set the AWS access key for the IAM Role that supports the services.",
		},
		Definition{
			Name: KeySecretAccessKey,
			Env:  "AWS_SECRET_ACCESS_KEY",
			Help: "Set the AWS secret key for the IAM Role that supports the services.",
		},
		Definition{
			Name:    KeyAWSRegion,
			Env:     "AWS_REGION",
			Default: Static(DefaultAWSRegion),
			Help:    "The AWS region where the services are hosted.",
		},
		Definition{
			Name: KeyS3Bucket,
			Env:  "S3_BUCKET",
			Help: "The name of the S3 bucket to store Parse files.",
		},
		Definition{
			Name: KeyS3BucketPrefix,
			Env:  "S3_BUCKET_PREFIX",
			Help: "The prefix to where the files will be stored and located. If defined, it should end with a slash.",
		},
		Definition{
			Name:      KeyS3BaseURL,
			Env:       "S3_BASE_URL",
			Transform: TrailingSlashParser,
			Help:      "Define the S3 base URL for accessing files. While normally this is an S3 URL, it can be a CloudFront defined URL.",
		},
		Definition{
			Name:      KeyS3DirectAccess,
			Env:       "S3_DIRECT_ACCESS",
			Default:   Static(false),
			Transform: BooleanParser,
			Help:      "Whether file access should bypass the server.",
		},
		Definition{
			Name: KeyS3ServerSideEnc,
			Env:  "S3_SERVER_SIDE_ENCRYPTION",
			Help: "ex. AES256|aws:kms",
		},
		Definition{
			Name:    KeyS3GlobalCacheControl,
			Env:     "S3_GLOBAL_CACHE_CONTROL",
			Default: Static("public, max-age=31536000"),
			Help:    "Set the default cache policy for files on S3.",
		},
		Definition{
			Name: KeySNSAPNS,
			Env:  "AWS_SNS_APNS",
			Help: "The AWS SNS ARN to be used for sending push notifications to Apple devices.",
		},
		Definition{
			Name: KeySNSFCM,
			Env:  "AWS_SNS_FCM",
			Help: "The AWS SNS ARN to be used for sending push notifications to Android devices.",
		},
		Definition{
			Name: KeyIOSBundleID,
			Env:  "IOS_BUNDLE_ID",
			Help: "The iOS bundle identifier for the iOS version of the mobile app.",
		},
		Definition{
			Name:      KeyFacebookAppIDs,
			Env:       "FACEBOOK_APP_IDS",
			Transform: ArrayParser,
			Help:      "To enable Facebook authentication, set a list of comma delimited Facebook App Ids.",
		},
		Definition{
			Name: KeyStaticFilesPath,
			Env:  "STATIC_FILES_PATH",
			Help: "Whether Parse Server should serve static files contained in the given directory (ex. /public).",
		},
		Definition{
			Name: KeySystemEmailAddress,
			Env:  "SYSTEM_EMAIL_ADDRESS",
			Help: "The email that will be used when sending email for verifications and password reset (ex. no-reply@example.com).",
		},
		Definition{
			Name:      KeyPublishEnvKeys,
			Env:       "PUBLISH_ENV_KEYS",
			Default:   Static([]string{}),
			Transform: ArrayParser,
			Help:      "A list of additional ENV variables to publish in the config API (comma separated).",
		},
		Definition{
			Name:      KeyMetricsMount,
			Env:       "METRICS_MOUNT",
			Transform: MountPathParser,
			Help:      "The mount path for Prometheus metrics. Disabled unless set.",
		},
	)
}

// RandomKey returns n random bytes hex encoded.
func RandomKey(n int) string {
	b := make([]byte, n)
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func defaultAppName(env Env) any {
	if name := env.Get("HEROKU_APP_NAME"); name != "" {
		return name
	}
	return nil
}

func defaultServerHost(env Env) any {
	if name := env.Get("HEROKU_APP_NAME"); name != "" {
		return name + ".herokuapp.com"
	}
	return nil
}

func defaultDatabaseURI(env Env) any {
	if uri := env.FirstOf(databaseURIFallbacks...); uri != "" {
		return uri
	}
	return DefaultDatabaseURI
}

func defaultPublicServerURL(env Env) any {
	if u := env.Get("PARSE_SERVER_URL"); u != "" {
		return u
	}
	return nil
}
