// Package fitlog provides the functions and types behind the `fit` command
// line tool: a local-first toolkit for personal fitness data kept in plain
// CSV files, so users retain full control and can diff or version their own
// history.
//
// The core functionalities include:
//   - Import: merging rows from calorie-tracker exports into a persistent
//     weight-history file, appending only records not already present. Rows
//     are identified by their date, canonicalized so that the many formats
//     trackers emit compare equal.
//   - Column Mapping: an alias table relating the header spellings found in
//     exports ("Exer.", "kcal", "weight_lbs") to a canonical schema.
//   - Weekly Aggregation: collapsing daily entries into per-week averages
//     merged into a weekly history file.
//   - Analysis: maintenance-calorie estimation from logged intake and weight
//     trend, LoseIt weekly export parsing, and strength-training 1RM history.
//
// History files are the only persistent state: a run loads them, computes
// entirely in memory, and replaces the file content in one step, so a failed
// run never corrupts the history.
package fitlog
