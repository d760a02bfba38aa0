// Package config defines the format-agnostic definition model for a
// workspace: lattices, residuated lattices, twist structures, models and
// checks, exactly as they cross the boundary between the core and the
// external editor/persistence layers.
//
// The config.Document is the single source of truth for the workspace
// builder. Concrete loaders, such as the HCL one, are provided in separate
// packages. The JSON field tags document the serialized shape owned by the
// external persistence layer; this package performs no file I/O itself.
package config
