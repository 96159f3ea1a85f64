// Package models contains shared data models used across the symptomdesk codebase.
package models

// PhysicianRecord is a single entry in the physician directory.
// Name and Specialization are required for a record to be usable as a
// recommendation target; extension fields are optional and carry tagged
// presence (nil means absent) so consumers never probe for keys.
type PhysicianRecord struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Contact        string `json:"contact"`

	Hospital     *string  `json:"hospital,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	Availability *string  `json:"availability,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	Education    *string  `json:"education,omitempty"`
}

// Usable reports whether the record can be offered as a recommendation target.
func (p PhysicianRecord) Usable() bool {
	return p.Name != "" && p.Specialization != ""
}
