package domain

import "time"

// AuditEntry records a state-changing action taken by a user.
type AuditEntry struct {
	ActorID       string    `json:"actor_id" bson:"actor_id"`
	ActorUsername string    `json:"actor_username" bson:"actor_username"`
	Action        string    `json:"action" bson:"action"`
	Resource      string    `json:"resource" bson:"resource"`
	ResourceID    string    `json:"resource_id,omitempty" bson:"resource_id,omitempty"`
	At            time.Time `json:"at" bson:"at"`
}
