package unit

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status is the lifecycle state of a unit. Values match the status_id column.
type Status int

const (
	Unknown Status = iota

	// New is equipment received and not yet handed out.
	New

	// Defect marks equipment found faulty.
	Defect

	// ToSupplier marks equipment being returned to the supplier.
	ToSupplier

	// WithInstaller is equipment handed to an installer.
	WithInstaller

	// AtWork is equipment installed at a customer site. Linking a unit to an
	// order moves it here.
	AtWork

	// Dismantled is equipment removed from a customer site.
	Dismantled
)

type statusInfo struct {
	label string
	color string
}

func catalog() map[Status]statusInfo {
	return map[Status]statusInfo{
		New:           {label: "New equipment", color: "green"},
		Defect:        {label: "Defective", color: "red"},
		ToSupplier:    {label: "Returned to supplier", color: "orange"},
		WithInstaller: {label: "With installer", color: "blue"},
		AtWork:        {label: "Installed", color: "purple"},
		Dismantled:    {label: "Dismantled", color: "gray"},
	}
}

// ListActive returns every known status ordered by id.
func ListActive() []Status {
	return []Status{New, Defect, ToSupplier, WithInstaller, AtWork, Dismantled}
}

// Available returns the statuses a unit in status s may be switched to:
// every active status except s itself.
func (s Status) Available() []Status {
	out := make([]Status, 0, len(ListActive()))
	for _, st := range ListActive() {
		if st != s {
			out = append(out, st)
		}
	}
	return out
}

func (s Status) Validate() error {
	if _, ok := catalog()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Label returns the display name, or "Unknown" for values outside the catalog.
func (s Status) Label() string {
	if info, ok := catalog()[s]; ok {
		return info.label
	}
	return "Unknown"
}

// Color returns the colour hint used by presentation layers.
func (s Status) Color() string {
	if info, ok := catalog()[s]; ok {
		return info.color
	}
	return "black"
}

// WithColor renders the label followed by the colour hint, e.g. "Installed [purple]".
func (s Status) WithColor() string {
	return fmt.Sprintf("%s [%s]", s.Label(), s.Color())
}

func (s Status) String() string {
	return s.Label()
}
