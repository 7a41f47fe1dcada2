// Package conv provides typed parsers that turn a single string token into a value.
// Parsers are resolved per destination type from a registry seeded with the builtin
// scalar kinds; any type whose pointer implements encoding.TextUnmarshaler is supported
// without registration.
package conv
