package gateway

import (
	"github.com/kelanaapp/kelana/internal/pkg/models"
	natspkg "github.com/kelanaapp/kelana/internal/pkg/nats"
	"github.com/kelanaapp/kelana/services/profiles"
)

// ProfileGW handles profile gateway operations
type ProfileGW struct {
	natsGateway  *NATSGateway
	mediaGateway *MediaHTTPClient
}

// NewProfileGW creates a new gateway instance with NATS and media storage clients
func NewProfileGW(natsClient *natspkg.Client, mediaCfg models.MediaConfig) profiles.ProfileGW {
	return &ProfileGW{
		natsGateway:  NewNATSGateway(natsClient),
		mediaGateway: NewMediaHTTPClient(mediaCfg),
	}
}
