// Package carscrape extracts structured vehicle and dealer records from
// heterogeneous car-dealer web pages saved as static HTML. Given a page,
// it detects which of several competing parsing templates applies,
// dispatches parsing with a well-defined fallback order, and normalizes
// the output into canonical vehicle and dealer rows.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/).
package carscrape
