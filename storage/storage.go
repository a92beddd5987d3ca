package storage

import "context"

// Client defines the interface for the Automizor asset storage API.
type Client interface {
	// List returns the names of all assets.
	List(ctx context.Context) ([]string, error)

	// Delete removes the named asset.
	Delete(ctx context.Context, name string) error

	// GetBytes retrieves the named asset as raw bytes.
	GetBytes(ctx context.Context, name string) ([]byte, error)

	// GetText retrieves the named asset as a UTF-8 string.
	GetText(ctx context.Context, name string) (string, error)

	// GetJSON retrieves the named asset and decodes it as JSON into v.
	GetJSON(ctx context.Context, name string, v any) error

	// GetFile retrieves the named asset and writes it to path,
	// returning the path. An existing file at path is overwritten.
	GetFile(ctx context.Context, name, path string) (string, error)

	// SetBytes uploads raw bytes as the named asset. An empty
	// contentType defaults to "application/octet-stream". A write
	// overwrites any prior content at that name.
	SetBytes(ctx context.Context, name string, data []byte, contentType string) error

	// SetText uploads text as the named asset with content type
	// "text/plain".
	SetText(ctx context.Context, name, text string) error

	// SetJSON marshals v and uploads it as the named asset with
	// content type "application/json".
	SetJSON(ctx context.Context, name string, v any) error

	// SetJSONIndent is SetJSON with indented output.
	SetJSONIndent(ctx context.Context, name string, v any, prefix, indent string) error

	// SetFile uploads the file at path as the named asset. An empty
	// contentType is inferred from the path's extension, falling back
	// to "application/octet-stream".
	SetFile(ctx context.Context, name, path, contentType string) error
}
