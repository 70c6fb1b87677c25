package taxa

// ConservationStatus is a taxon's status at a place according to an authority.
type ConservationStatus struct {
	Status     string `json:"status" yaml:"status"`                               // Status code, e.g. "EN" or "S3"
	StatusName string `json:"status_name,omitempty" yaml:"status_name,omitempty"` // Human-readable status, e.g. "endangered"
	Authority  string `json:"authority,omitempty" yaml:"authority,omitempty"`     // e.g. "IUCN Red List"
	URL        string `json:"url,omitempty" yaml:"url,omitempty"`                 // Authority page for the status
	Place      *Place `json:"place,omitempty" yaml:"place,omitempty"`             // Place the status applies to; nil is global
}

// DisplayName returns the status name, or the status code when unnamed.
func (s ConservationStatus) DisplayName() string {
	if s.StatusName != "" {
		return s.StatusName
	}
	return s.Status
}
