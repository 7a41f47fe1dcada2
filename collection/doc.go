// Package collection provides generic list, set and map containers together with builders,
// read-only views, delimited string explode/implode helpers and nested collection flattening.
//
// Read-only views and fixed size lists report mutation attempts with ErrUnsupportedOperation,
// distinct from any data error.
package collection
