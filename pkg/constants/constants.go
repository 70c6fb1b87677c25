// Package constants provides shared constants used throughout the taxamark codebase.
// This includes the web base URL, list delimiters, display glyphs, default
// length budgets and file permissions that should be consistent across the
// formatters and the CLI.
package constants

// Web resource constants
const (
	// WWWBaseURL is the base URL of the observation website that taxon,
	// listed taxon and observation links point to
	WWWBaseURL = "https://www.inaturalist.org"

	// ListedTaxaPath is the path prefix for listed taxon (establishment means) pages
	ListedTaxaPath = "/listed_taxa/"

	// ObservationsPath is the path for observation searches
	ObservationsPath = "/observations"
)

// Delimiter constants for taxon name lists
const (
	// ListDelimiter separates names in a flat list
	ListDelimiter = ", "

	// HierarchyDelimiter separates names in an ancestor hierarchy
	HierarchyDelimiter = " > "

	// NamesPlaceholder is the substitution placeholder in a names wrapper format
	NamesPlaceholder = "%s"
)

// Glyph constants used in rendered Markdown
const (
	// InactiveGlyph marks an inactive taxon (HEAVY EXCLAMATION MARK SYMBOL)
	InactiveGlyph = "❗"

	// InactiveTaxonLabel follows the inactive glyph
	InactiveTaxonLabel = "Inactive Taxon"

	// EndemicGlyph marks endemic establishment means (SPARKLE)
	EndemicGlyph = "❇"

	// NativeGlyph marks native establishment means (LARGE GREEN SQUARE)
	NativeGlyph = "\U0001F7E9"

	// IntroducedGlyph marks introduced establishment means (UP-POINTING SMALL RED TRIANGLE)
	IntroducedGlyph = "\U0001F53C"

	// GlyphSpacer separates a glyph from the text it decorates (NARROW NO-BREAK SPACE)
	GlyphSpacer = "\u202f"
)

// Limit constants
const (
	// DefaultMaxLen is the default name list budget; 0 means unbounded
	DefaultMaxLen = 0

	// EmbedDescriptionMaxLen is the description limit of a chat embed
	EmbedDescriptionMaxLen = 4096
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
