package purchase

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusCancelled:
		return true
	default:
		return false
	}
}
