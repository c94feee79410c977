package gateway

import (
	"context"
	"encoding/json"

	"github.com/kelanaapp/kelana/internal/pkg/constants"
	"github.com/kelanaapp/kelana/internal/pkg/models"
	natspkg "github.com/kelanaapp/kelana/internal/pkg/nats"
)

// NATSGateway implements the NATS publishing operations for the profiles service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishProfileUpdated publishes a profile updated event to NATS
func (g *NATSGateway) PublishProfileUpdated(ctx context.Context, event *models.ProfileUpdatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectProfileUpdated, data)
}

// PublishTypeChanged publishes a type changed event to NATS
func (g *NATSGateway) PublishTypeChanged(ctx context.Context, event *models.TypeChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectProfileTypeChanged, data)
}

// PublishVerificationSubmitted publishes a verification submitted event to NATS
func (g *NATSGateway) PublishVerificationSubmitted(ctx context.Context, event *models.VerificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectVerificationSubmitted, data)
}

// PublishVerificationDecided publishes a verification decided event to NATS
func (g *NATSGateway) PublishVerificationDecided(ctx context.Context, event *models.VerificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectVerificationDecided, data)
}
