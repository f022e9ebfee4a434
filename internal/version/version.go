// Package version holds the build version
package version

// Version is replaced at build time with -ldflags "-X github.com/MinaswanNakamoto/pipetext/internal/version.Version=..."
var Version = "devel"
