package pubsub

import (
	"encoding/json"

	"qkart/internal/domain/service"
	"qkart/internal/errors"
)

// EventTypeUserRegistered is set as the event_type attribute on every account message.
const EventTypeUserRegistered = "user.registered"

// Provider names accepted in pubsub.provider.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// encodeUserRegistered renders the event payload and the attributes subscribers filter on.
func encodeUserRegistered(event *service.UserRegisteredEvent) ([]byte, map[string]string, error) {
	if event == nil {
		return nil, nil, errors.New("nil user registered event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type": EventTypeUserRegistered,
		"user_id":    event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
