package models

// Staff is a bookable resource (stylist, practitioner).
type Staff struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	AvatarURL string `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
}

// StaffSnapshot is the subset of staff data embedded into computed slots.
type StaffSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func (s Staff) Snapshot() StaffSnapshot {
	return StaffSnapshot{ID: s.ID, Name: s.Name, AvatarURL: s.AvatarURL}
}
