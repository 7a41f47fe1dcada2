// Package visitor offers generic callback visitors over slices and arrays, plus a synchronized map.
// Typed fast paths cover common element types; anything else falls back to reflection.
package visitor
