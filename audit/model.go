// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// AuditLog records one administrative mutation of the policy state: a plan
// list replacement, a feature toggle, or a subscription assignment.
type AuditLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	ActorID       string          `json:"actor_id"`
	Action        string          `json:"action"`
	TargetID      string          `json:"target_id"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}
