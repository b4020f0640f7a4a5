// Package catalog holds the Multi-Agent System Failure Taxonomy (MASFT).
//
// A Catalog is built once from source data and is read-only afterwards. It
// holds failure modes keyed by name and the categories derived from them.
//
// # Source format
//
// The source is a JSON object keyed by failure mode name. Each value carries
// the string fields category, description, short_description and
// phd_level_analysis and the string arrays example_scenarios,
// tactical_solutions and structural_solutions. Categories are not declared;
// they are the distinct category values in first-seen order.
//
// Loading checks the source in three passes:
//   - YAML node walk: syntax, declaration order, duplicate names
//   - CUE schema (#Catalog): required fields, types, non-empty values
//   - Go decode into FailureMode values
//
// Any failure is reported as a *LoadError. Lookups by name are exact but
// case-insensitive.
package catalog
