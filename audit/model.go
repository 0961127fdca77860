// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

const (
	ActionAccessDenied   = "ACCESS_DENIED"
	ActionBlockUser      = "BLOCK_USER"
	ActionUnblockUser    = "UNBLOCK_USER"
	ActionChangeRole     = "CHANGE_ROLE"
	ActionCreateCategory = "CREATE_CATEGORY"
	ActionCreateProduct  = "CREATE_PRODUCT"
	ActionUpdateProduct  = "UPDATE_PRODUCT"
	ActionUpdateSettings = "UPDATE_SETTINGS"
)

type AuditLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	ActorID       string          `json:"actor_id"`
	Action        string          `json:"action"`
	TargetID      string          `json:"target_id"`
	Path          string          `json:"path,omitempty"`
	Outcome       string          `json:"outcome,omitempty"`
	Status        int             `json:"status,omitempty"`
	AccessGranted bool            `json:"access_granted"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

// ChangeDetails marshals an old/new pair for AuditLog.ChangeDetails.
func ChangeDetails(oldValue, newValue any) json.RawMessage {
	data, err := json.Marshal(map[string]any{"old": oldValue, "new": newValue})
	if err != nil {
		return nil
	}
	return data
}
