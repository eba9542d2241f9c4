package publisher

import (
	"context"

	"github.com/pkg/errors"

	"github.com/azhagan2/retail-pos-pipeline/src/common/middleware"
)

// AMQPPublisher routes transactions through a direct exchange named after
// the stream, with the partition key as the routing key.
type AMQPPublisher struct {
	exchange middleware.MessageMiddleware
}

func NewAMQPPublisher(url, streamName string) (*AMQPPublisher, error) {
	exchange, err := middleware.NewExchangeMiddleware(url, streamName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect exchange %s", streamName)
	}
	return &AMQPPublisher{exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, partitionKey string, payload []byte) error {
	if e := p.exchange.Send(partitionKey, payload); e != middleware.MessageMiddlewareSuccess {
		return errors.Errorf("failed to publish record: middleware error %d", e)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if e := p.exchange.Close(); e != middleware.MessageMiddlewareSuccess {
		return errors.Errorf("failed to close middleware connection: error %d", e)
	}
	return nil
}
