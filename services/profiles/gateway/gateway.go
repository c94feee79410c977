package gateway

import (
	"context"

	"github.com/kelanaapp/kelana/internal/pkg/models"
)

// StoreMedia forwards to the media storage HTTP client
func (g *ProfileGW) StoreMedia(ctx context.Context, upload *models.MediaUpload) (*models.Media, error) {
	return g.mediaGateway.StoreMedia(ctx, upload)
}

// PublishProfileUpdated forwards to the NATS gateway implementation
func (g *ProfileGW) PublishProfileUpdated(ctx context.Context, event *models.ProfileUpdatedEvent) error {
	return g.natsGateway.PublishProfileUpdated(ctx, event)
}

// PublishTypeChanged forwards to the NATS gateway implementation
func (g *ProfileGW) PublishTypeChanged(ctx context.Context, event *models.TypeChangedEvent) error {
	return g.natsGateway.PublishTypeChanged(ctx, event)
}

// PublishVerificationSubmitted forwards to the NATS gateway implementation
func (g *ProfileGW) PublishVerificationSubmitted(ctx context.Context, event *models.VerificationEvent) error {
	return g.natsGateway.PublishVerificationSubmitted(ctx, event)
}

// PublishVerificationDecided forwards to the NATS gateway implementation
func (g *ProfileGW) PublishVerificationDecided(ctx context.Context, event *models.VerificationEvent) error {
	return g.natsGateway.PublishVerificationDecided(ctx, event)
}
