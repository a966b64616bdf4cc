package constants

import "testing"

func TestButtonNames(t *testing.T) {
	for vb := VirtualButtonUnassigned; vb < virtualButtonCount; vb++ {
		if buttonNames[vb] == "" {
			t.Errorf("button %d has no name", vb)
		}
	}
	if got := VirtualButton(99).GetName(); got != "Unknown" {
		t.Errorf("out of range name = %q", got)
	}
}

func TestLookupButton(t *testing.T) {
	tests := []struct {
		name   string
		want   VirtualButton
		wantOK bool
	}{
		{"L1", VirtualButtonL1, true},
		{" select ", VirtualButtonSelect, true},
		{"menu", VirtualButtonMenu, true},
		{"unassigned", VirtualButtonUnassigned, false},
		{"Power", VirtualButtonUnassigned, false},
		{"", VirtualButtonUnassigned, false},
	}
	for _, tt := range tests {
		got, ok := LookupButton(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("LookupButton(%q) = %v, %v; want %v, %v", tt.name, got.GetName(), ok, tt.want.GetName(), tt.wantOK)
		}
	}
}
