// Package kernels declares the native entry points the ggbrain package calls
// across its host boundary, as one capability set.
//
// Every entry point is a pure function over value types: images and
// matrices go in, new images, matrices or tables come out, and no state is
// shared between calls. Only FloodFill mutates its argument, as declared.
//
// Native is the implementation shipped here. PrintMat is fully implemented
// on top of package printer and writes to the sink given to New. The
// remaining entry points are declared contracts only: they return an error
// wrapping ErrNotImplemented so callers can detect the gap with errors.Is
// instead of receiving a guessed result.
//
// Operations lists the declared names in declaration order; Implemented
// reports which of them Native serves.
package kernels
