package config

// Version is the graphqd binary version.
// Set at build time via: -ldflags "-X github.com/tgraph/graphqd/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
