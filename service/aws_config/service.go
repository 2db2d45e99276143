// Package awsconfig provides a service for loading AWS configuration.
package awsconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// NewService creates a new AWS configuration service.
func NewService() Service {
	return &service{}
}

// GetAWSCfg loads an AWS config for the scan. Credentials come from the
// explicit static keys when given, otherwise from the named profile,
// otherwise from the SDK default chain (env vars, shared config, instance
// role). Credentials are retrieved eagerly so a bad keypair fails here,
// before any region is scanned.
func (s *service) GetAWSCfg(ctx context.Context, region, profile string, creds StaticCredentials) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error

	// Only set region if explicitly provided; otherwise the SDK defaults
	// apply (AWS_REGION, AWS_DEFAULT_REGION, or ~/.aws/config).
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if !creds.empty() {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS config: %w", err)
	}

	// The scanner treats credential problems as fatal for the whole scan,
	// never as a per-region failure. Forcing retrieval here keeps that
	// boundary clean.
	if cfg.Credentials != nil {
		if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
			return aws.Config{}, fmt.Errorf("failed to retrieve credentials: %w", err)
		}
	}

	return cfg, nil
}
