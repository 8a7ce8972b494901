package interfaces

import (
	"context"

	"bootline/internal/entities"
)

// ModelClient is the boundary to the remote generative model.
type ModelClient interface {
	CreateMessage(ctx context.Context, req entities.ModelRequest) (*entities.ModelResponse, error)
}
