// Package classify decides how a ping outcome is presented.
package classify

import (
	"strings"

	"pingdash/internal/models"
)

// Category is the display and export class of a ping outcome.
type Category string

const (
	Success     Category = "success"
	Unreachable Category = "unreachable"
	Failure     Category = "failure"
)

// UnreachableMarker is the probe tool's text for a host that did not answer
// even though the probe process itself completed.
const UnreachableMarker = "host unreachable"

// Classify returns the category of an outcome from the successful list.
// Outcomes from the unsuccessful list are always Failure and are not
// passed through here.
func Classify(o models.PingOutcome) Category {
	if strings.Contains(o.Output, UnreachableMarker) {
		return Unreachable
	}
	return Success
}
