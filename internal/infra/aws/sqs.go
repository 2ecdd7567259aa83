package aws

import (
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// NewSqsClient creates an SQS client, overriding the endpoint when one is configured
func NewSqsClient(awsConfig awssdk.Config, endpoint string) *sqs.Client {
	return sqs.NewFromConfig(awsConfig, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = awssdk.String(endpoint)
		}
	})
}
