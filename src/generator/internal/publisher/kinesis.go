package publisher

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/pkg/errors"
)

// kinesisAPI is the slice of the Kinesis client the publisher needs.
type kinesisAPI interface {
	PutRecord(ctx context.Context, params *kinesis.PutRecordInput, optFns ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error)
}

type KinesisPublisher struct {
	client     kinesisAPI
	streamName string
}

func NewKinesisPublisher(ctx context.Context, region, streamName string) (*KinesisPublisher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return &KinesisPublisher{
		client:     kinesis.NewFromConfig(awsCfg),
		streamName: streamName,
	}, nil
}

func (p *KinesisPublisher) Publish(ctx context.Context, partitionKey string, payload []byte) error {
	_, err := p.client.PutRecord(ctx, &kinesis.PutRecordInput{
		StreamName:   aws.String(p.streamName),
		Data:         payload,
		PartitionKey: aws.String(partitionKey),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to put record on stream %s", p.streamName)
	}
	return nil
}

func (p *KinesisPublisher) Close() error {
	return nil
}
