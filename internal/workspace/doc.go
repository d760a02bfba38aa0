// Package workspace builds the objects a loaded definition document
// describes, in dependency order: lattices, then residuated lattices, then
// twist structures, then models. Construction is fail-fast; a workspace that
// builds successfully contains only validated, immutable algebra objects and
// fully populated models, looked up by definition name.
package workspace
