// Package normalisers maps parsed content files into the unified ContentRecord
// shape. Each source type has its own normaliser package; the Registry
// dispatches a file to the normaliser for its source type.
//
// Normalisers are registered with the Registry at startup.
package normalisers
