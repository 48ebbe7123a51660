package domain

import "time"

// ActivityAction identifies the portal action an event records.
type ActivityAction string

const (
	ActivityLogin    ActivityAction = "login"
	ActivitySignup   ActivityAction = "signup"
	ActivityLogout   ActivityAction = "logout"
	ActivityNavigate ActivityAction = "navigate"
	ActivityGoBack   ActivityAction = "go_back"
)

// ActivityEvent is an audit record of a session or navigation action.
type ActivityEvent struct {
	ActorID   string         `json:"actor_id" bson:"actor_id"`
	ActorRole Role           `json:"actor_role" bson:"actor_role"`
	Action    ActivityAction `json:"action" bson:"action"`
	View      string         `json:"view,omitempty" bson:"view,omitempty"` // set for navigation actions
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
}
