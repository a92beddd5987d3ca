// Package automizor holds module-wide metadata shared by the client
// packages. The clients themselves live in the storage and vault
// subpackages.
package automizor

// Version is the client library version. It is reported to the platform
// in the User-Agent header of every request.
const Version = "1.1.0"
