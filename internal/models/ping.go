package models

// PingOutcome is one probed address as reported by the local service.
// Output is set when the probe process ran, Error when it failed to run.
type PingOutcome struct {
	IP     string `json:"ip" validate:"required"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// PingResultSet is the payload of the ping endpoint, already split by the
// probing process. Order reflects probe issuance and must be kept.
type PingResultSet struct {
	SuccessfulPings   []PingOutcome `json:"successfulPings" validate:"dive"`
	UnsuccessfulPings []PingOutcome `json:"unsuccessfulPings" validate:"dive"`
}

// Len returns the number of probed addresses in the set.
func (s *PingResultSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.SuccessfulPings) + len(s.UnsuccessfulPings)
}
