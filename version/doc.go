// Package version carries the library version, set at build time via
// -ldflags:
//
//	go build -ldflags "-X github.com/skillsenselab/openapi-client/version.Version=1.2.0"
package version
