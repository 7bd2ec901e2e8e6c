package event

// Event is a single activity record in a user's feed
type Event struct {
	EventID   int    `json:"eventId" gorm:"primaryKey;autoIncrement"`
	Timestamp int64  `json:"timestamp" gorm:"not null;index:idx_user_events,priority:2"`
	UserID    int    `json:"userId" gorm:"not null;index:idx_user_events,priority:1"`
	EventType string `json:"eventType" gorm:"size:16;not null"`
	Operation string `json:"operation" gorm:"size:16;not null"`
	EntityID  int    `json:"entityId" gorm:"not null"`
}

// Event types
const (
	TypeFriend = "FRIEND"
	TypeLike   = "LIKE"
	TypeReview = "REVIEW"
)

// Event operations
const (
	OpAdd    = "ADD"
	OpRemove = "REMOVE"
	OpUpdate = "UPDATE"
)

// Repository defines the interface for event log access
type Repository interface {
	Append(event *Event) error
	FindByUserID(userID int) ([]*Event, error)
}

// TableName returns the table name for GORM
func (Event) TableName() string {
	return "events"
}
