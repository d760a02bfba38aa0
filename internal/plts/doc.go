// Package plts implements paraconsistent labelled transition systems: worlds
// carrying twist-valued valuations, connected by action-labelled transitions
// whose weights are themselves twist elements.
//
// A Model is bound to exactly one twist structure. Every valuation value and
// every relation weight is checked for membership in that structure when it
// enters the model; mutation failures leave the model unchanged. World
// insertion order and per-(source, action) target insertion order are
// preserved, which keeps evaluation and counter-example enumeration
// deterministic.
//
// The model is a unit of exclusive mutation: callers must serialize
// structural writes. Reads, including formula evaluation, never mutate the
// model and need no coordination against each other.
package plts
