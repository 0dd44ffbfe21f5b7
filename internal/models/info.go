package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text is a diagnostic value from the local service. The service is loose
// about types, so strings, numbers and booleans are all accepted and kept
// as their textual form. Absent and null values are empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't', 'f':
		b, err := strconv.ParseBool(string(data))
		if err != nil {
			return fmt.Errorf("invalid boolean %s", data)
		}
		*t = Text(strconv.FormatBool(b))
	case '{', '[':
		return fmt.Errorf("expected a scalar, got %s", kindOf(data[0]))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = Text(n.String())
	}
	return nil
}

func (t Text) String() string { return string(t) }

func kindOf(b byte) string {
	if b == '{' {
		return "object"
	}
	return "array"
}

// Field is a labelled value as shown on the dashboard.
type Field struct {
	Label string
	Value string
}

// SystemInfo describes the local machine
type SystemInfo struct {
	Brand          Text `json:"brand"`
	Model          Text `json:"model"`
	RAMType        Text `json:"ramType"`
	RAMSize        Text `json:"ramSize"`
	RAMUsage       Text `json:"ramUsage"`
	TotalStorage   Text `json:"totalStorage"`
	FreeStorage    Text `json:"freeStorage"`
	UsedStorage    Text `json:"usedStorage"`
	ProcessorModel Text `json:"processorModel"`
	ProcessorSpeed Text `json:"processorSpeed"`
	OSName         Text `json:"osName"`
	OSVersion      Text `json:"osVersion"`
	CPUUsage       Text `json:"cpuUsage"`
}

// Fields returns the system info in display order.
func (s *SystemInfo) Fields() []Field {
	if s == nil {
		s = &SystemInfo{}
	}
	return []Field{
		{"Brand", s.Brand.String()},
		{"Model", s.Model.String()},
		{"RAM Type", s.RAMType.String()},
		{"RAM Size", s.RAMSize.String()},
		{"RAM Usage", s.RAMUsage.String()},
		{"Total Storage", s.TotalStorage.String()},
		{"Free Storage", s.FreeStorage.String()},
		{"Used Storage", s.UsedStorage.String()},
		{"Processor Model", s.ProcessorModel.String()},
		{"Processor Speed", s.ProcessorSpeed.String()},
		{"OS Name", s.OSName.String()},
		{"OS Version", s.OSVersion.String()},
		{"CPU Usage", s.CPUUsage.String()},
	}
}

// NetworkInfo describes the local network configuration
type NetworkInfo struct {
	IPAddress  Text `json:"ipAddress"`
	SubnetMask Text `json:"subnetMask"`
	Gateway    Text `json:"gateway"`
	PingResult Text `json:"pingResult"`
}

// Fields returns the network info in display order.
func (n *NetworkInfo) Fields() []Field {
	if n == nil {
		n = &NetworkInfo{}
	}
	return []Field{
		{"IP Address", n.IPAddress.String()},
		{"Subnet Mask", n.SubnetMask.String()},
		{"Gateway", n.Gateway.String()},
		{"Ping Result", n.PingResult.String()},
	}
}
