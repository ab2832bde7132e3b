package models

// Snapshot is the persisted shape of the five data collections. Transient UI
// state is never part of a snapshot. It must round-trip exactly through
// JSON serialize/deserialize.
type Snapshot struct {
	CourseTypes     []CourseType     `json:"courseTypes"`
	Courses         []Course         `json:"courses"`
	CourseOfferings []CourseOffering `json:"courseOfferings"`
	Students        []Student        `json:"students"`
	Registrations   []Registration   `json:"registrations"`
}

// IsEmpty reports whether the snapshot carries no data at all, which is how
// a fresh or unreadable storage slot presents itself.
func (s Snapshot) IsEmpty() bool {
	return len(s.CourseTypes) == 0 &&
		len(s.Courses) == 0 &&
		len(s.CourseOfferings) == 0 &&
		len(s.Students) == 0 &&
		len(s.Registrations) == 0
}
