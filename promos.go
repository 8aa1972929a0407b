// Package promos extracts structured fuel-promotion records from
// free-text news articles. It fetches source articles, splits them into
// paragraph-level text fragments, filters the fragments that describe a
// payment-method discount, and pulls the discount attributes (percentage,
// monetary cap, weekdays) into a uniform Promotion record.
//
// This package contains domain types, interfaces, and the pure extraction
// functions following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., http/, goquery/, zerolog/).
package promos
