// Package eval computes twist-element values of parsed formulas at the
// worlds of a model, and classifies formulas as valid or invalid over whole
// models.
//
// Evaluation is synchronous and side-effect free: a failed evaluation leaves
// the model and the AST untouched and reusable. Modal operators aggregate
// over the model's transition lists in insertion order, which keeps
// counter-example enumeration deterministic.
package eval
