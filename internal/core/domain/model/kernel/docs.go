// Package kernel contains shared value objects used across the domain model:
// UUID identifiers for entities and role-scoped opaque access tokens granting
// anonymous riders and customers a restricted view of a single order.
//
// All value objects in this package are immutable and must be created through
// their factory functions; zero values fail Validate.
package kernel
