package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/azhagan2/retail-pos-pipeline/src/common/logger"
)

type MessageMiddlewareExchange struct {
	exchangeName string
	conn         MiddlewareConnection
	channel      MiddlewareChannel
}

// NewExchangeMiddleware connects to the broker and declares a durable
// direct exchange. Messages are routed per Send call, one routing key each.
func NewExchangeMiddleware(url, exchangeName string) (*MessageMiddlewareExchange, error) {
	m := &MessageMiddlewareExchange{}

	conn, err := amqp.Dial(url)
	if err != nil {
		logger.GetLogger().Errorln("Failed to connect to RabbitMQ:", err)
		return m, err
	}

	ch, err := conn.Channel()
	if err != nil {
		logger.GetLogger().Errorln("Failed to open a channel:", err)
		return m, err
	}

	err = ch.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable (persistant exchange)
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		logger.GetLogger().Errorln("Failed to declare an exchange:", err)
		return m, err
	}

	m.exchangeName = exchangeName
	m.conn = conn
	m.channel = ch

	return m, nil
}

func (me *MessageMiddlewareExchange) Send(routingKey string, message []byte) MessageMiddlewareError {
	if me.conn.IsClosed() {
		logger.GetLogger().Errorln("Connection is closed")
		return MessageMiddlewareDisconnectedError
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.GetLogger().Debugf("Publishing message to route %s: %s", routingKey, string(message))
	err := me.channel.PublishWithContext(ctx,
		me.exchangeName, // exchange
		routingKey,      // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    uuid.New().String(),
			Body:         message,
		})
	if err != nil {
		logger.GetLogger().Errorf("Failed to publish a message to route %s: %v", routingKey, err)
		return MessageMiddlewareMessageError
	}

	return MessageMiddlewareSuccess
}

func (me *MessageMiddlewareExchange) Close() MessageMiddlewareError {
	errCh := me.channel.Close()
	errConn := me.conn.Close()
	if errCh != nil || errConn != nil {
		logger.GetLogger().Errorln("Failed to close middleware connection")
		return MessageMiddlewareCloseError
	}

	return MessageMiddlewareSuccess
}

func (me *MessageMiddlewareExchange) Delete() MessageMiddlewareError {
	err := me.channel.ExchangeDelete(
		me.exchangeName, // name
		false,           // ifUnused
		false,           // noWait
	)
	if err != nil {
		logger.GetLogger().Errorln("Failed to delete exchange:", err)
		return MessageMiddlewareDeleteError
	}

	logger.GetLogger().Debugln("Deleted exchange:", me.exchangeName)

	return MessageMiddlewareSuccess
}
