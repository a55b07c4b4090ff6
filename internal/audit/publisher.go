// v0
// internal/audit/publisher.go
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// Observer receives publish outcome notifications, typically backed by metrics.
type Observer interface {
	AuditPublished()
	AuditDropped()
}

// Config encapsulates the runtime options for audit publishing.
type Config struct {
	Enabled   bool
	Topic     string
	Brokers   []string
	Acks      int
	QueueSize int
}

// Event is the audit record emitted for every computed estimate.
type Event struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	Category    string    `json:"category"`
	TotalKWh    float64   `json:"totalEnergyKWh"`
	Rating      string    `json:"performanceRating"`
	Ts          time.Time `json:"ts"`
}

type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaWriteCloser interface {
	Close() error
}

var (
	errPublisherNilLogger  = errors.New("publisher requires a logger")
	errPublisherNilWriter  = errors.New("publisher requires a writer")
	errPublisherNotStarted = errors.New("audit publisher not started")
)

const defaultQueueSize = 256

// Publisher asynchronously publishes estimate audit events to the configured
// Kafka topic. Delivery is best effort: when the queue is full the event is
// dropped with a warning rather than blocking the request path.
type Publisher struct {
	cfg     Config
	log     *slog.Logger
	writer  kafkaMessageWriter
	closer  kafkaWriteCloser
	obs     Observer
	enabled bool

	queue     chan kafka.Message
	runCtx    context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewPublisher constructs a Publisher backed by a Kafka writer.
func NewPublisher(cfg Config, log *slog.Logger, obs Observer) (*Publisher, error) {
	if log == nil {
		return nil, errPublisherNilLogger
	}
	if !cfg.Enabled {
		log.Info("audit publisher disabled")
		return &Publisher{cfg: cfg, log: log, obs: obs, enabled: false}, nil
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		return nil, fmt.Errorf("audit topic must not be empty")
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		RequiredAcks:           kafka.RequiredAcks(cfg.Acks),
		AllowAutoTopicCreation: false,
		Balancer:               &kafka.Hash{},
	}
	return newPublisherWithWriter(cfg, log, writer, writer, obs)
}

// newPublisherWithWriter wires the provided writer into the publisher. It is used in tests.
func newPublisherWithWriter(cfg Config, log *slog.Logger, writer kafkaMessageWriter, closer kafkaWriteCloser, obs Observer) (*Publisher, error) {
	if log == nil {
		return nil, errPublisherNilLogger
	}
	if writer == nil {
		return nil, errPublisherNilWriter
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Publisher{
		cfg:     cfg,
		log:     log.With(slog.String("component", "audit_publisher")),
		writer:  writer,
		closer:  closer,
		obs:     obs,
		enabled: cfg.Enabled,
		queue:   make(chan kafka.Message, size),
	}, nil
}

// Start launches the background publishing loop.
func (p *Publisher) Start(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	if ctx == nil {
		return errors.New("context must not be nil")
	}
	p.startOnce.Do(func() {
		p.runCtx, p.cancel = context.WithCancel(ctx)
		p.wg.Add(1)
		go p.run()
		p.log.Info("audit publisher started", "topic", p.cfg.Topic)
	})
	return nil
}

// Stop shuts the publisher down and waits for in-flight messages to drain.
func (p *Publisher) Stop(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	var stopErr error
	p.stopOnce.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			stopErr = ctx.Err()
		}
		if p.closer != nil {
			if err := p.closer.Close(); err != nil {
				p.log.Error("audit writer close error", "err", err)
			}
		}
		p.log.Info("audit publisher stopped")
	})
	return stopErr
}

// Publish queues an event for asynchronous delivery. A full queue drops the
// event: audit delivery must never slow a live estimate request.
func (p *Publisher) Publish(ev Event) error {
	if !p.enabled {
		return nil
	}
	if p.runCtx == nil {
		return errPublisherNotStarted
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := kafka.Message{Key: []byte(ev.Fingerprint), Value: value}
	select {
	case p.queue <- msg:
		return nil
	default:
		if p.obs != nil {
			p.obs.AuditDropped()
		}
		p.log.Warn("audit queue full, event dropped", "fingerprint", ev.Fingerprint)
		return nil
	}
}

func (p *Publisher) run() {
	defer p.wg.Done()
	for {
		select {
		case msg := <-p.queue:
			p.write(msg)
		case <-p.runCtx.Done():
			// Drain whatever was queued before the shutdown signal.
			for {
				select {
				case msg := <-p.queue:
					p.write(msg)
				default:
					return
				}
			}
		}
	}
}

func (p *Publisher) write(msg kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		if p.obs != nil {
			p.obs.AuditDropped()
		}
		p.log.Error("audit publish failed", "err", err, "key", string(msg.Key))
		return
	}
	if p.obs != nil {
		p.obs.AuditPublished()
	}
}
