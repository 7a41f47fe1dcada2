// Package dates converts, validates and shifts date strings described by yyyy/MM/dd style patterns,
// and resolves partial dates such as "2006" or "2006-02" to a concrete day using a boundary policy.
//
// It also defines the local and zoned date time value types used by the JSON mapper.
package dates
