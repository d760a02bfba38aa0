// Package hcl provides the concrete HCL implementation of the workspace
// Loader interface defined in the `config` package. It is responsible for
// file discovery and parsing, schema decoding, and translation of raw HCL
// values into the format-agnostic definition model.
package hcl
