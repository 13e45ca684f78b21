// Package prospekt extracts structured leaflet listings from the
// Prospektmaschine hypermarket catalog page and persists them as an
// ordered record set.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, sqlite/).
package prospekt
