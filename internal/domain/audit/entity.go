package audit

import "time"

// Entry is one audit log row. Written on user creation and global
// configuration mutations; never updated or deleted.
type Entry struct {
	ID        string
	UserID    string
	Action    string
	TableName string
	RecordID  *string
	NewData   map[string]interface{}
	CreatedAt time.Time
}

const (
	ActionUserCreated     = "user_created"
	ActionGeofenceUpdated = "geofence_updated"
	ActionScheduleUpdated = "schedule_updated"
)
