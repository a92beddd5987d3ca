package vault

import "context"

// Client defines the interface for the Automizor vault API.
type Client interface {
	// Get retrieves a secret by name. Returns *NotFoundError when the
	// name does not exist.
	Get(ctx context.Context, name string) (*Secret, error)

	// Set updates an existing secret, replacing its value container.
	// Returns *NotFoundError when the name does not exist.
	Set(ctx context.Context, secret *Secret) (*Secret, error)

	// Create stores a secret, updating it when the name already
	// exists and creating it otherwise.
	Create(ctx context.Context, secret *Secret) (*Secret, error)
}
