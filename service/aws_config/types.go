package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
)

type service struct{}

// StaticCredentials are explicit access keys supplied by the caller. The
// zero value means "use the SDK default resolution chain".
type StaticCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

func (c StaticCredentials) empty() bool {
	return c.AccessKeyID == "" && c.SecretAccessKey == ""
}

// Service is the interface for AWS configuration loading.
type Service interface {
	GetAWSCfg(ctx context.Context, region, profile string, creds StaticCredentials) (aws.Config, error)
}
