package models

// ProfileEvent is an audit event published to Kafka after a successful
// profile mutation.
type ProfileEvent struct {
	EventID     string `json:"event_id"`               // Unique event id
	UserID      string `json:"user_id"`                // Owner of the mutated profile
	Operation   string `json:"operation"`              // app_added, app_removed, password_set, state_updated
	PackageName string `json:"package_name,omitempty"` // Set for app_added/app_removed
	Timestamp   int64  `json:"timestamp"`              // Unix seconds
}
