package report

import (
	"bytes"
	"strings"
	"testing"

	"pingdash/internal/classify"
	"pingdash/internal/models"
	"pingdash/internal/state"
)

func exampleSet() *models.PingResultSet {
	return &models.PingResultSet{
		SuccessfulPings: []models.PingOutcome{
			{IP: "10.0.0.1", Output: "64 bytes from 10.0.0.1"},
		},
		UnsuccessfulPings: []models.PingOutcome{
			{IP: "10.0.0.2", Error: "timeout", Output: ""},
		},
	}
}

func TestRender_Example(t *testing.T) {
	r := Render(exampleSet())

	if len(r.Successful) != 1 || len(r.Unsuccessful) != 1 {
		t.Fatalf("unexpected section sizes: %+v", r)
	}

	ok := r.Successful[0]
	if ok.String() != "10.0.0.1: Success - 64 bytes from 10.0.0.1" {
		t.Errorf("success row = %q", ok.String())
	}
	if ok.Category != classify.Success {
		t.Errorf("success category = %s", ok.Category)
	}

	fail := r.Unsuccessful[0]
	if fail.String() != "10.0.0.2: Failed - timeout" {
		t.Errorf("failure row = %q", fail.String())
	}
	if fail.Category != classify.Failure || fail.Label != "timeout" {
		t.Errorf("failure row = %+v", fail)
	}
}

func TestRender_SoftFailure(t *testing.T) {
	r := Render(&models.PingResultSet{
		SuccessfulPings: []models.PingOutcome{{IP: "10.0.0.3", Output: "host unreachable"}},
	})
	row := r.Successful[0]
	if row.Category != classify.Unreachable || row.Label != "unreachable" {
		t.Fatalf("soft failure row = %+v", row)
	}
	if row.Text != "Success - host unreachable" {
		t.Fatalf("text = %q", row.Text)
	}
}

func TestRender_PreservesOrder(t *testing.T) {
	set := &models.PingResultSet{}
	ips := []string{"10.0.0.9", "10.0.0.1", "10.0.0.5", "10.0.0.1"}
	for _, ip := range ips {
		set.SuccessfulPings = append(set.SuccessfulPings, models.PingOutcome{IP: ip, Output: "ok"})
		set.UnsuccessfulPings = append(set.UnsuccessfulPings, models.PingOutcome{IP: "f" + ip, Error: "e"})
	}

	r := Render(set)
	for i, ip := range ips {
		if r.Successful[i].IP != ip {
			t.Errorf("successful[%d] = %s, want %s", i, r.Successful[i].IP, ip)
		}
		if r.Unsuccessful[i].IP != "f"+ip {
			t.Errorf("unsuccessful[%d] = %s, want f%s", i, r.Unsuccessful[i].IP, ip)
		}
	}
}

func TestRender_Disjoint(t *testing.T) {
	set := &models.PingResultSet{
		SuccessfulPings:   []models.PingOutcome{{IP: "a", Output: "ok"}, {IP: "b", Output: "host unreachable"}},
		UnsuccessfulPings: []models.PingOutcome{{IP: "c", Error: "exit status 2"}},
	}
	r := Render(set)
	seen := map[string]bool{}
	for _, row := range append(append([]Row{}, r.Successful...), r.Unsuccessful...) {
		if seen[row.IP] {
			t.Fatalf("%s rendered twice", row.IP)
		}
		seen[row.IP] = true
	}
	if len(seen) != set.Len() {
		t.Fatalf("rendered %d addresses, want %d", len(seen), set.Len())
	}
}

func TestRender_EmptyAndNil(t *testing.T) {
	for name, set := range map[string]*models.PingResultSet{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			r := Render(set)
			if len(r.Successful) != 0 || len(r.Unsuccessful) != 0 {
				t.Fatalf("expected empty report, got %+v", r)
			}
		})
	}
}

func TestExportRows_Example(t *testing.T) {
	ok, fail := ExportRows(exampleSet())

	want := ExportRow{IP: "10.0.0.1", Status: "success", Result: "Success - 64 bytes from 10.0.0.1"}
	if len(ok) != 1 || ok[0] != want {
		t.Fatalf("successful rows = %+v", ok)
	}
	wantFail := ExportRow{IP: "10.0.0.2", Status: "timeout", Result: "Failed - "}
	if len(fail) != 1 || fail[0] != wantFail {
		t.Fatalf("unsuccessful rows = %+v", fail)
	}
}

func TestExportRows_SoftFailure(t *testing.T) {
	ok, _ := ExportRows(&models.PingResultSet{
		SuccessfulPings: []models.PingOutcome{{IP: "10.0.0.3", Output: "host unreachable"}},
	})
	want := ExportRow{IP: "10.0.0.3", Status: "unreachable", Result: "Success - host unreachable"}
	if ok[0] != want {
		t.Fatalf("row = %+v", ok[0])
	}
}

func TestExportRows_MatchesRenderCategory(t *testing.T) {
	set := &models.PingResultSet{SuccessfulPings: []models.PingOutcome{
		{IP: "a", Output: "64 bytes"},
		{IP: "b", Output: "From 10.0.0.1 icmp_seq=1 Destination host unreachable"},
		{IP: "c"},
	}}
	r := Render(set)
	rows, _ := ExportRows(set)
	for i := range rows {
		if rows[i].Status != string(r.Successful[i].Category) {
			t.Errorf("row %d: export %s vs render %s", i, rows[i].Status, r.Successful[i].Category)
		}
	}
}

func TestWriteText(t *testing.T) {
	snap := state.NewSnapshot(
		models.SystemInfo{Brand: "Dell", CPUUsage: "12%"},
		models.NetworkInfo{Gateway: "10.0.0.254"},
		*exampleSet(),
	)
	var buf bytes.Buffer
	if err := WriteText(&buf, snap); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"System Information", "Brand:", "Dell", "Network Information", "10.0.0.254",
		"Successful Pings (1)", "Success - 64 bytes from 10.0.0.1",
		"Unsuccessful Pings (1)", "Failed - timeout",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteText_NoSnapshot(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, nil); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if !strings.Contains(buf.String(), "Successful Pings (0)") {
		t.Fatalf("expected empty sections:\n%s", buf.String())
	}
}
