// Package taxa defines the read-only taxon records that the formatters
// render: taxa with their ranks, names and ancestors, conservation statuses,
// establishment means and listed taxa.
//
// Records are decoded from observation API responses (JSON) or hand-written
// YAML fixtures and are never mutated after loading.
package taxa
