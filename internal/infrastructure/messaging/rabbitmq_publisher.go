// Package messaging publishes ledger events to RabbitMQ.
package messaging

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"time"

	"dominant_assurance/internal/usecase/interfaces"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sasha-s/go-deadlock"
)

// amqpChannel is the part of *amqp091.Channel the publisher needs.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// RabbitMQPublisher sends JSON bodies to a durable topic exchange. The
// channel is reopened once when a publish fails.
type RabbitMQPublisher struct {
	exchange string

	mu       deadlock.Mutex
	conn     *amqp091.Connection
	channel  amqpChannel
	reopen   func() (amqpChannel, error)
	declared bool
}

var _ interfaces.IEventPublisher = (*RabbitMQPublisher)(nil)

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

func NewRabbitMQPublisher(amqpURL, exchange string) (*RabbitMQPublisher, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}
	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	log.Printf("[events][rabbitmq] connected exchange=%s", exchange)
	return &RabbitMQPublisher{
		exchange: exchange,
		conn:     conn,
		channel:  ch,
		reopen: func() (amqpChannel, error) {
			return conn.Channel()
		},
	}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.publish(ctx, routingKey, body)
	if err == nil {
		return nil
	}
	log.Printf("[events][rabbitmq] publish failed; reopening channel exchange=%s routing_key=%s err=%v", p.exchange, routingKey, err)
	if p.reopen == nil {
		return err
	}
	ch, chErr := p.reopen()
	if chErr != nil {
		return chErr
	}
	_ = p.channel.Close()
	p.channel = ch
	p.declared = false
	return p.publish(ctx, routingKey, body)
}

func (p *RabbitMQPublisher) publish(ctx context.Context, routingKey string, body []byte) error {
	if !p.declared {
		if err := p.channel.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
			return err
		}
		p.declared = true
	}
	return p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

func (p *RabbitMQPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
