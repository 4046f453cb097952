// Package pubsub publishes account events to Google Pub/Sub or, in development,
// to a local HTTP endpoint that receives Pub/Sub-style push messages.
package pubsub

import (
	"context"
	"log/slog"

	"qkart/config"
	"qkart/internal/domain/service"
	"qkart/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops every event; used when pubsub.provider is empty.
type noopPublisher struct{}

// NewNoopPublisher returns a publisher that accepts and discards events.
func NewNoopPublisher() service.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishUserRegistered(context.Context, *service.UserRegisteredEvent) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, account events are discarded")

		return NewNoopPublisher(), nil
	}

	var publisher service.EventPublisher

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing account events over local HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}

		var err error
		publisher, err = NewGooglePubSubPublisher(context.Background(), cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
