package server

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/azhagan2/retail-pos-pipeline/src/common/logger"
	"github.com/azhagan2/retail-pos-pipeline/src/generator/business"
	"github.com/azhagan2/retail-pos-pipeline/src/generator/config"
	"github.com/azhagan2/retail-pos-pipeline/src/generator/internal/publisher"
)

var log = logger.GetLogger()

const (
	SinkKinesis = "kinesis"
	SinkAMQP    = "amqp"
)

type Server struct {
	config    *config.Config
	generator *business.Generator
	publisher publisher.Publisher
	isRunning bool
}

func InitServer(conf *config.Config) (*Server, error) {
	var pub publisher.Publisher
	var err error

	switch conf.Sink {
	case SinkKinesis:
		pub, err = publisher.NewKinesisPublisher(context.Background(), conf.AWSRegion, conf.StreamName)
	case SinkAMQP:
		pub, err = publisher.NewAMQPPublisher(conf.MiddlewareURL, conf.StreamName)
	default:
		err = errors.Errorf("unknown stream sink %q", conf.Sink)
	}
	if err != nil {
		log.Errorf("Failed to create %s publisher: %v", conf.Sink, err)
		return nil, err
	}

	var rng *rand.Rand
	if conf.Seed != 0 {
		rng = rand.New(rand.NewSource(conf.Seed))
	}

	return &Server{
		config:    conf,
		generator: business.NewGenerator(rng),
		publisher: pub,
		isRunning: true,
	}, nil
}

// Run generates and publishes transactions until Count is reached or a
// shutdown signal arrives. A failed publish aborts the run.
func (s *Server) Run() error {
	log.Infof("Starting POS generator against stream %s (%s sink)...", s.config.StreamName, s.config.Sink)

	s.setupGracefulShutdown()
	defer s.Shutdown()

	interval := time.Duration(s.config.IntervalMs) * time.Millisecond

	for sent := 0; s.isRunning && sent < s.config.Count; sent++ {
		txn, err := s.generator.GenerateTransaction()
		if err != nil {
			return errors.Wrap(err, "failed to generate transaction")
		}

		payload, err := json.Marshal(txn)
		if err != nil {
			return errors.Wrapf(err, "failed to serialize transaction %s", txn.TransactionID)
		}

		if err := s.publisher.Publish(context.Background(), txn.StoreID, payload); err != nil {
			return errors.Wrapf(err, "failed to publish transaction %s", txn.TransactionID)
		}

		log.Infof("Published %s: store=%s total=%.2f items=%d", txn.TransactionID, txn.StoreID, txn.TotalAmount, len(txn.Items))

		if interval > 0 && sent < s.config.Count-1 {
			time.Sleep(interval)
		}
	}

	return nil
}

func (s *Server) setupGracefulShutdown() {
	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChannel
		log.Infof("action: shutdown_signal | result: received")
		s.isRunning = false
	}()
}

func (s *Server) Shutdown() {
	log.Debug("Shutting down POS generator...")
	s.isRunning = false
	if err := s.publisher.Close(); err != nil {
		log.Errorf("Error closing publisher: %v", err)
	}
}
