// Package config loads rxpipe's layered configuration.
//
// Layers, lowest first: embedded defaults, the user configuration file, the
// workspace .rxpipe.toml, RXPIPE_* environment variables and finally
// explicit overrides from command line flags. Every layer is TOML except
// the last two.
package config
