// Package cast converts loosely typed configuration values, such as those
// decoded from JSON or collected into a map[string]any, into the concrete
// types the rest of the module expects.
//
// Scalar conversions are delegated to [cast], so "true", 1 and true are all
// accepted as a boolean.
package cast
