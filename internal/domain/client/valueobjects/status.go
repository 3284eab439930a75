package valueobjects

// Status is the membership state derived from the end date. It is never
// persisted.
type Status string

const (
	StatusActive  Status = "Active"
	StatusExpired Status = "Expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsActive() bool {
	return s == StatusActive
}
