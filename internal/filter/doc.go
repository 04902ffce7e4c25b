// Package filter provides the predicate language shared by list, delete and
// export.
//
// Predicate is a sealed interface using the marker method pattern: only
// types in this package implement it, so Match and Describe can switch over
// every kind exhaustively.
//
// Predicates are pure functions of a single event.Event. Evaluation order has
// no observable effect; Select preserves input order.
//
// Date kinds:
//   - OnDate:  date == D
//   - Before:  date <  D
//   - After:   date >  D
//   - Between: From <= date <= To (inclusive range)
//   - Outside: date < Before OR date > After (exclusive, each side optional)
//
// Between and Outside are different operations and must not be conflated.
//
// Category kinds: CategoryIn, CategoryNotIn, CategoryEquals, NoCategory.
// Membership is exact string equality; "" means "no category".
//
// Description kind: DescriptionPrefix (case-sensitive byte prefix).
//
// Combinators: All (always true) and And (all must hold; empty And is true).
package filter
