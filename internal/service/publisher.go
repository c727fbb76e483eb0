package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/nats-io/nats.go"
)

// NATSPublisher публикует переходы в NATS как JSON ClickEvent
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher подключается к NATS с бесконечным переподключением
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	conn, err := nats.Connect(
		url,
		nats.Name("shortlinks"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.PingInterval(20*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSPublisher{conn: conn, subject: subject}, nil
}

func (p *NATSPublisher) PublishClick(ctx context.Context, click model.ClickEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(click)
	if err != nil {
		return fmt.Errorf("failed to encode click: %w", err)
	}

	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.subject, err)
	}

	return nil
}

// Close отправляет буферизованные сообщения и закрывает соединение
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
