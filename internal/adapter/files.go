// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/hyperdrive/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// FileStorage names where uploaded files are kept.
type FileStorage string

const (
	FileStorageDatabase FileStorage = "database"
	FileStorageS3       FileStorage = "s3"
)

// FilesAdapter describes the file storage of the API server. S3 is set only
// when Storage is [FileStorageS3].
type FilesAdapter struct {
	Storage FileStorage
	S3      *S3Files
}

// S3Files holds the S3 client and the options of the S3 files adapter.
// hyperdrive only configures it; the API server built by an
// app.APIFactory stores files through Key, ObjectURL and PutObjectInput.
type S3Files struct {
	Client               *s3.Client
	Bucket               string
	Region               string
	BucketPrefix         string
	BaseURL              string
	DirectAccess         bool
	GlobalCacheControl   string
	ServerSideEncryption types.ServerSideEncryption
}

func newFilesAdapter(awsCfg *aws.Config, values config.Values) FilesAdapter {
	bucket := values.String(config.KeyS3Bucket)
	if awsCfg == nil || bucket == "" {
		return FilesAdapter{Storage: FileStorageDatabase}
	}

	return FilesAdapter{
		Storage: FileStorageS3,
		S3: &S3Files{
			Client:               s3.NewFromConfig(*awsCfg),
			Bucket:               bucket,
			Region:               awsCfg.Region,
			BucketPrefix:         values.String(config.KeyS3BucketPrefix),
			BaseURL:              values.String(config.KeyS3BaseURL),
			DirectAccess:         values.Bool(config.KeyS3DirectAccess),
			GlobalCacheControl:   values.String(config.KeyS3GlobalCacheControl),
			ServerSideEncryption: types.ServerSideEncryption(values.String(config.KeyS3ServerSideEnc)),
		},
	}
}

// String returns "s3:{bucket}/{prefix}" or "Database".
func (f FilesAdapter) String() string {
	if f.Storage == FileStorageS3 && f.S3 != nil {
		return fmt.Sprintf("s3:%s/%s", f.S3.Bucket, f.S3.BucketPrefix)
	}
	return "Database"
}

// Key returns the object key of a stored file.
func (f *S3Files) Key(name string) string {
	return f.BucketPrefix + name
}

// ObjectURL returns the direct URL of a stored file, under BaseURL when set.
func (f *S3Files) ObjectURL(name string) string {
	key := f.BucketPrefix + url.PathEscape(name)
	if f.BaseURL != "" {
		return strings.TrimSuffix(f.BaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", f.Bucket, f.Region, key)
}

// PutObjectInput builds the upload request for a file, applying the cache
// control and server side encryption options.
func (f *S3Files) PutObjectInput(name, contentType string, body io.Reader) *s3.PutObjectInput {
	input := &s3.PutObjectInput{
		Bucket: aws.String(f.Bucket),
		Key:    aws.String(f.Key(name)),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if f.GlobalCacheControl != "" {
		input.CacheControl = aws.String(f.GlobalCacheControl)
	}
	if f.ServerSideEncryption != "" {
		input.ServerSideEncryption = f.ServerSideEncryption
	}
	if f.DirectAccess {
		input.ACL = types.ObjectCannedACLPublicRead
	}
	return input
}
