// Package days implements the list, add and delete operations on top of the
// event store and the filter predicates.
//
// The CLI parses arguments once into an immutable Command value (List, Add
// or Delete) and hands it to Service.Execute. Filter arguments are turned
// into predicates by ListFilter and DeleteFilter, which are also where
// usage errors for bad flag combinations come from.
//
// Delete in dry-run mode and real delete apply the same predicate to the
// same file contents in the same order. They differ only in the action
// taken per match: dry-run reports, real delete removes.
package days
