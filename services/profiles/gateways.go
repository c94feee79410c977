package profiles

import (
	"context"

	"github.com/kelanaapp/kelana/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kelanaapp/kelana/services/profiles ProfileGW

// ProfileGW defines the profile service gateways interface
type ProfileGW interface {
	// Media storage gateway
	StoreMedia(ctx context.Context, upload *models.MediaUpload) (*models.Media, error)

	// NATS gateway
	PublishProfileUpdated(ctx context.Context, event *models.ProfileUpdatedEvent) error
	PublishTypeChanged(ctx context.Context, event *models.TypeChangedEvent) error
	PublishVerificationSubmitted(ctx context.Context, event *models.VerificationEvent) error
	PublishVerificationDecided(ctx context.Context, event *models.VerificationEvent) error
}
