package report

import (
	"pingdash/internal/classify"
	"pingdash/internal/models"
)

const (
	successPrefix = "Success - "
	failedPrefix  = "Failed - "
)

// Row is one on-screen line of a ping section.
type Row struct {
	IP       string
	Category classify.Category
	// Label is the category name for successful probes and the probe
	// error for failed ones.
	Label string
	Text  string
}

func (r Row) String() string {
	return r.IP + ": " + r.Text
}

// Report holds the two rendered ping sections.
type Report struct {
	Successful   []Row
	Unsuccessful []Row
}

// Render builds the display rows for a result set. A nil set renders two
// empty sections.
func Render(set *models.PingResultSet) Report {
	var r Report
	if set == nil {
		return r
	}

	r.Successful = make([]Row, 0, len(set.SuccessfulPings))
	for _, o := range set.SuccessfulPings {
		cat := classify.Classify(o)
		r.Successful = append(r.Successful, Row{
			IP:       o.IP,
			Category: cat,
			Label:    string(cat),
			Text:     successPrefix + o.Output,
		})
	}

	r.Unsuccessful = make([]Row, 0, len(set.UnsuccessfulPings))
	for _, o := range set.UnsuccessfulPings {
		r.Unsuccessful = append(r.Unsuccessful, Row{
			IP:       o.IP,
			Category: classify.Failure,
			Label:    o.Error,
			Text:     failedPrefix + o.Error,
		})
	}
	return r
}

// ExportRow is one data row of an exported sheet.
type ExportRow struct {
	IP     string
	Status string
	Result string
}

func (e ExportRow) values() []interface{} {
	return []interface{}{e.IP, e.Status, e.Result}
}

// ExportRows derives the rows of both sheets. The Status of a successful
// probe comes from the same Classify call the display uses.
func ExportRows(set *models.PingResultSet) (successful, unsuccessful []ExportRow) {
	if set == nil {
		return nil, nil
	}
	for _, o := range set.SuccessfulPings {
		successful = append(successful, ExportRow{
			IP:     o.IP,
			Status: string(classify.Classify(o)),
			Result: successPrefix + o.Output,
		})
	}
	for _, o := range set.UnsuccessfulPings {
		unsuccessful = append(unsuccessful, ExportRow{
			IP:     o.IP,
			Status: o.Error,
			Result: failedPrefix + o.Output,
		})
	}
	return successful, unsuccessful
}
