package models

import (
	"encoding/json"
	"testing"
)

func TestText_UnmarshalScalars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "string", in: `{"brand":"Dell"}`, want: "Dell"},
		{name: "integer", in: `{"brand":16}`, want: "16"},
		{name: "float keeps text", in: `{"brand":2.50}`, want: "2.50"},
		{name: "bool", in: `{"brand":true}`, want: "true"},
		{name: "null", in: `{"brand":null}`, want: ""},
		{name: "absent", in: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s SystemInfo
			if err := json.Unmarshal([]byte(tt.in), &s); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if s.Brand.String() != tt.want {
				t.Errorf("Brand = %q, want %q", s.Brand, tt.want)
			}
		})
	}
}

func TestText_RejectsStructuredValues(t *testing.T) {
	for _, in := range []string{`{"gateway":{"a":1}}`, `{"gateway":[1,2]}`} {
		var n NetworkInfo
		if err := json.Unmarshal([]byte(in), &n); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}

func TestFields_OrderAndBlanks(t *testing.T) {
	var nilSys *SystemInfo
	fields := nilSys.Fields()
	if len(fields) != 13 {
		t.Fatalf("want 13 system fields, got %d", len(fields))
	}
	if fields[0].Label != "Brand" || fields[12].Label != "CPU Usage" {
		t.Fatalf("unexpected order: %+v", fields)
	}
	for _, f := range fields {
		if f.Value != "" {
			t.Fatalf("nil info should render blanks, got %+v", f)
		}
	}

	n := &NetworkInfo{IPAddress: "192.168.1.10", Gateway: "192.168.1.1"}
	got := n.Fields()
	if got[0].Value != "192.168.1.10" || got[1].Value != "" || got[2].Value != "192.168.1.1" {
		t.Fatalf("network fields: %+v", got)
	}
}

func TestPingResultSet_Len(t *testing.T) {
	var nilSet *PingResultSet
	if nilSet.Len() != 0 {
		t.Fatal("nil set should have zero length")
	}
	s := &PingResultSet{
		SuccessfulPings:   []PingOutcome{{IP: "10.0.0.1"}},
		UnsuccessfulPings: []PingOutcome{{IP: "10.0.0.2"}, {IP: "10.0.0.3"}},
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d", s.Len())
	}
}
