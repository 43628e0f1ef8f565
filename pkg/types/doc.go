// Package types defines the entity records, typed identifiers, roles,
// filter predicates, and standard error types for the Housebook record
// system. Entities are immutable value records; mutation happens by
// producing a new record and swapping it into a collection, never by
// in-place assignment.
package types
