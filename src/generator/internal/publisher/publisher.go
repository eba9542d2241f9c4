package publisher

import "context"

// Publisher submits one serialized transaction per call to the ingestion
// stream, partitioned by the given key. No batching, no retries: a failed
// submission is surfaced to the caller as-is.
type Publisher interface {
	Publish(ctx context.Context, partitionKey string, payload []byte) error
	Close() error
}
