// Package chipdiff provides the types and functions to compare chipset sales
// rosters across fiscal years. It is designed to be local-first: the analyst
// points the tool at a directory of per-year CSV exports and gets, for any
// selected year, the chipsets that were added, removed, or reappeared relative
// to the preceding years.
//
// The core functionalities include:
//   - Roster Management: an ordered, per-year registry of chipset records
//     (chipset id, customer, PDM name), merged from CSV files and manual
//     entries with a deterministic last-write-wins policy on duplicate ids.
//   - Classification Engine: a pure function computing the Added, Removed and
//     Reappeared sets for a target year against the full registry history.
//   - CSV Ingestion: header-matched parsing of fiscal-year exports, with the
//     year taken from the trailing 4-digit token of the file name, and
//     per-file statistics on skipped and overwritten rows.
//   - Remote Access: a small client for the classification API exposed by the
//     `chipdiff serve` command.
//
// This package serves as the foundational logic for the `chipdiff`
// command-line tool, ensuring that every frontend (CLI, HTTP, assistant)
// computes the same classification from the same registry state.
package chipdiff
