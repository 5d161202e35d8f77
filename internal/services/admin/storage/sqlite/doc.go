// Package sqlite provides SQLite-backed session persistence for the admin
// service.
//
// Only operator session state lives here; referral and invite data stays in
// the SuperClip backend and is never cached to disk.
package sqlite
