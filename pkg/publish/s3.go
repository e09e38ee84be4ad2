package publish

import (
	"context"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the part of *s3.Client the S3 target uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config configures the S3 client.
type S3Config struct {
	// Region is the bucket region (default: AWS_REGION, then "us-east-1").
	Region string

	// Endpoint overrides the service endpoint for S3-compatible stores.
	// Path-style addressing is used when it is set.
	Endpoint string

	// Credentials provides the access keys.
	// Default: AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
	Credentials aws.CredentialsProvider
}

// NewS3Client builds an S3 client from cfg.
func NewS3Client(cfg S3Config) *s3.Client {
	region := cfg.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}

	creds := cfg.Credentials
	if creds == nil {
		creds = aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials))
	}

	return s3.New(s3.Options{
		Region:      region,
		Credentials: creds,
	}, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}

// envCredentials reads static credentials from the environment.
func envCredentials(ctx context.Context) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "EnvironmentVariables",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errMissingCredentials
	}
	return creds, nil
}

// S3Target puts objects into a bucket.
type S3Target struct {
	client PutObjectAPI
	bucket string
}

// NewS3Target creates a target writing to bucket.
func NewS3Target(client PutObjectAPI, bucket string) *S3Target {
	return &S3Target{client: client, bucket: bucket}
}

// Bucket returns the target bucket.
func (t *S3Target) Bucket() string {
	return t.bucket
}

// Put uploads body under obj.Key.
func (t *S3Target) Put(ctx context.Context, obj Object, body io.Reader) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(t.bucket),
		Key:         aws.String(obj.Key),
		Body:        body,
		ContentType: aws.String(obj.ContentType),
	}
	if obj.CacheControl != "" {
		input.CacheControl = aws.String(obj.CacheControl)
	}
	if obj.Size > 0 {
		input.ContentLength = aws.Int64(obj.Size)
	}

	_, err := t.client.PutObject(ctx, input)
	return err
}
