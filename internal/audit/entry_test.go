package audit

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestNewEntrySnapshotsOldAndNew(t *testing.T) {
	tenantID := uuid.New()
	branchID := uuid.New()
	entityID := uuid.New()

	entry := NewEntry(Params{
		TenantID:   tenantID,
		BranchID:   &branchID,
		Action:     ActionMoved,
		EntityType: EntityAppointment,
		EntityID:   &entityID,
		Old:        map[string]any{"scheduled_time": "10:00"},
		New:        map[string]any{"scheduled_time": "14:00"},
	})

	if entry.ID == uuid.Nil {
		t.Error("entry id not assigned")
	}
	if entry.TenantID != tenantID || entry.Action != ActionMoved {
		t.Errorf("entry = %+v", entry)
	}

	var oldVals, newVals map[string]any
	if err := json.Unmarshal(entry.OldValues, &oldVals); err != nil {
		t.Fatalf("old values: %v", err)
	}
	if err := json.Unmarshal(entry.NewValues, &newVals); err != nil {
		t.Fatalf("new values: %v", err)
	}
	if oldVals["scheduled_time"] != "10:00" || newVals["scheduled_time"] != "14:00" {
		t.Errorf("snapshots old=%v new=%v", oldVals, newVals)
	}
}

func TestNewEntryWithoutSnapshots(t *testing.T) {
	entry := NewEntry(Params{
		TenantID:   uuid.New(),
		Action:     ActionNoShow,
		EntityType: EntityAppointment,
	})

	if entry.OldValues != nil || entry.NewValues != nil {
		t.Errorf("expected nil snapshots, got old=%s new=%s", entry.OldValues, entry.NewValues)
	}
}

func TestNewEntryDegradesOnUnmarshalableSnapshot(t *testing.T) {
	entry := NewEntry(Params{
		TenantID: uuid.New(),
		Action:   ActionCancelled,
		New:      make(chan int),
	})

	if entry.NewValues != nil {
		t.Errorf("expected nil for unmarshalable value, got %s", entry.NewValues)
	}
}
