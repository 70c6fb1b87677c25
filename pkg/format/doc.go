// Package format renders taxa as Markdown for chat messages.
//
// The building blocks are pure functions over read-only taxa.Taxon records:
//
//   - Name formats one taxon name with rank, italics, trinomial
//     abbreviations, common name and inactive marker.
//   - Names joins a list or hierarchy of names and truncates it to a length
//     budget, replacing the overflow with "and N more".
//   - EstablishmentMeans, ConservationStatus, ObservationCount and
//     QualityGrade produce the short fragments that make up a description.
//
// TaxonFormatter combines them into the title and description of a taxon.
// All functions are safe for concurrent use.
package format
