// Package config holds the run parameters of the parity tool: system shape,
// generator mode, seed and the tuning knobs of the sparsifier and encoder.
//
// A Config is loaded from YAML or JSON (both go through ghodss/yaml, so the
// json tags are authoritative), validated in one pass, and then mapped onto
// the functional options of the engine packages.
package config
