// Package audit defines the contract for recording mutation history.
package audit

import (
	"context"

	"minipos/internal/core/id"
)

// Action is the type of audited operation.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionCancel Action = "cancel"
)

// Recorder persists audit entries. Implementations must not fail the
// business operation; recording errors are their own to log.
type Recorder interface {
	Record(ctx context.Context, entityType string, entityID id.ID, action Action, changes map[string]any)
}

// Nop is a Recorder that discards everything. Useful in tests and for
// deployments without an audit table.
type Nop struct{}

func (Nop) Record(context.Context, string, id.ID, Action, map[string]any) {}
