// Package awssts resolves the identity of the scanning account.
package awssts

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// NewService creates a new STS service.
func NewService(awsconfig aws.Config) Service {
	return &service{client: sts.NewFromConfig(awsconfig)}
}

// NewServiceWithClient creates an STS service over an injected client.
func NewServiceWithClient(client STSClientAPI) Service {
	return &service{client: client}
}

// GetAccountID returns the AWS account id of the current credentials.
func (s *service) GetAccountID(ctx context.Context) (string, error) {
	out, err := s.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity: %w", err)
	}
	if out.Account == nil || *out.Account == "" {
		return "", fmt.Errorf("caller identity has no account id")
	}
	return *out.Account, nil
}
