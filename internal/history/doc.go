// Package history persists the interaction log.
//
// Every answered query is appended as an InteractionRecord holding the query
// text, the outcome and, for resolved queries only, the name and kind of the
// resolved entity. Records are read back most recent first.
//
// Store keeps the log in SQLite:
//   - WAL journal, NORMAL synchronous, 5s busy timeout
//   - a single open connection, so appends are serialized
//   - embedded schema plus user_version migrations
//
// Storage failures surface as *UnavailableError. Callers treat them as
// non-fatal: an answer is still shown when it could not be logged.
//
// The store also keeps the usage statistics browsed with "masft stats":
// failure mode views and ratings of suggested solutions.
package history
