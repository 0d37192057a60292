package audit

import (
	"encoding/json"
	"fmt"

	"warehouse/internal/core/domain/model/unit"
)

const dataChangedPrefix = "unit data changed: "

// UnitAdded describes a freshly registered unit.
func UnitAdded(unitID int64, modelName, vendorName, serial string, amount int) string {
	return fmt.Sprintf("unit added: #%d %s %s s/n: %s amount: %d", unitID, modelName, vendorName, serial, amount)
}

// DataChanged describes changed fields as a JSON object of field to new value.
// Keys are emitted in sorted order.
func DataChanged(changes map[string]string) string {
	if changes == nil {
		changes = map[string]string{}
	}
	raw, err := json.Marshal(changes)
	if err != nil {
		// map[string]string always marshals
		return dataChangedPrefix + "{}"
	}
	return dataChangedPrefix + string(raw)
}

// FieldsChanged is DataChanged for a snapshot diff.
func FieldsChanged(diff unit.Snapshot) string {
	return DataChanged(diff)
}

// StatusTransition describes a status change by the catalog labels.
func StatusTransition(from, to unit.Status) string {
	return DataChanged(map[string]string{
		"previous_status": from.Label(),
		"new_status":      to.Label(),
	})
}

// MovedOut is logged on the source unit of a split.
func MovedOut(amount int, childID int64) string {
	return fmt.Sprintf("moved %d to unit #%d", amount, childID)
}

// SplitFrom is logged on the unit created by a split.
func SplitFrom(sourceID int64, amount int) string {
	return fmt.Sprintf("unit split from #%d: amount %d", sourceID, amount)
}
