// Package storage defines persistence contracts for operator session state.
//
// Admin code uses these interfaces to keep the session layer testable and avoid
// depending on a concrete SQLite schema from presentation logic.
package storage
