// Package educator answers questions about the failure taxonomy.
//
// Service is the single entry point used by the CLI. Ask runs one query
// through resolve, format and the interaction log, in that order, and always
// returns an answer: a log that cannot be written only adds a warning.
// The browse operations read the catalog directly.
package educator
