package command

import (
	"fmt"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

type RemoveRecordCommand struct {
	ID    uint
	Scope authz.Scope
}

type RestoreRecordCommand struct {
	ID    uint
	Scope authz.Scope
}

// RemoveRecordHandler soft-deletes and restores records via the is_removed
// flag
type RemoveRecordHandler struct {
	records domain.RecordRepository
}

func NewRemoveRecordHandler(records domain.RecordRepository) *RemoveRecordHandler {
	return &RemoveRecordHandler{records: records}
}

func (h *RemoveRecordHandler) HandleRemove(cmd RemoveRecordCommand) error {
	return h.setRemoved(cmd.Scope, cmd.ID, true)
}

func (h *RemoveRecordHandler) HandleRestore(cmd RestoreRecordCommand) error {
	return h.setRemoved(cmd.Scope, cmd.ID, false)
}

func (h *RemoveRecordHandler) setRemoved(scope authz.Scope, id uint, removed bool) error {
	record, err := h.records.FindByID(authz.Scope{Admin: true}, id)
	if err != nil {
		return err
	}
	if !scope.Visible(record.OwnerID) {
		return fmt.Errorf("record %d: %w", id, apperr.ErrPermissionDenied)
	}
	if record.IsRemoved == removed {
		return nil
	}
	record.IsRemoved = removed
	return h.records.Update(record)
}
