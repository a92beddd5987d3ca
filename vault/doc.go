// Package vault provides a Go client for the Automizor Platform vault
// API, which stores named secrets such as API keys, passwords and other
// credential fields.
//
// # Quick Start
//
//	client, err := vault.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create (or overwrite) a secret.
//	secret, err := client.Create(ctx, &vault.Secret{
//	    Name:  "MySecret",
//	    Value: map[string]string{"username": "admin", "password": "*****"},
//	})
//
//	// Retrieve it later.
//	secret, err = client.Get(ctx, "MySecret")
//	fmt.Println(secret.Get("username"))
//
//	// Update a field and write it back.
//	secret.Update(map[string]string{"username": "user"})
//	secret, err = client.Set(ctx, secret)
//
// NewFromEnv reads AUTOMIZOR_API_HOST and AUTOMIZOR_API_TOKEN from the
// environment. New accepts the host and token directly.
//
// # Error Handling
//
// A 404 for a name-addressed lookup or update is reported as
// *NotFoundError so callers can branch on absence:
//
//	secret, err := client.Get(ctx, "maybe-missing")
//	if vault.IsNotFound(err) {
//	    // secret does not exist
//	}
//
// Every other failure (network, timeout, non-2xx, malformed body) is a
// *APIError carrying the service's error detail. Create relies on the
// same distinction internally: it attempts an update and falls back to
// the create endpoint only when the update reports not-found.
//
// # Concurrency
//
// A Client is safe for concurrent use. Every call performs a single
// blocking round trip with a fixed timeout; there is no retry.
package vault
