package version

import "fmt"

// Version is overridden at build time with -ldflags.
var Version = "1.0"

// clientName is the product token sent in the User-Agent header.
const clientName = "OpenAPI-Go-Client"

// UserAgent returns the User-Agent value identifying this client,
// e.g. "OpenAPI-Go-Client/1.0".
func UserAgent() string {
	return fmt.Sprintf("%s/%s", clientName, Version)
}
