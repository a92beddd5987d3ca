// Package storage provides a Go client for the Automizor Platform asset
// storage API. Assets are named binary objects with an associated
// content type; the client converts between raw bytes, text, JSON and
// local files.
//
// # Quick Start
//
//	client, err := storage.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.SetText(ctx, "greeting", "hello"); err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := client.GetText(ctx, "greeting")
//
// NewFromEnv reads AUTOMIZOR_API_HOST and AUTOMIZOR_API_TOKEN from the
// environment. New accepts the host and token directly.
//
// # Error Handling
//
// Failures of the remote call are reported as *APIError carrying the
// HTTP status and the service's error detail:
//
//	var apiErr *storage.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
//	    // asset does not exist
//	}
//
// Local failures (file IO, JSON encoding) propagate as the natural
// error of the operation.
//
// # Concurrency
//
// A Client is safe for concurrent use. Every call performs a single
// blocking round trip; there is no caching and no retry.
package storage
