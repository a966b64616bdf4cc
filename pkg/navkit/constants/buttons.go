package constants

import "strings"

// VirtualButton is a handheld button after keyboard and controller mapping.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu

	virtualButtonCount
)

var buttonNames = [virtualButtonCount]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonL2:         "L2",
	VirtualButtonR1:         "R1",
	VirtualButtonR2:         "R2",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

// GetName returns the label drawn in footer hints.
func (vb VirtualButton) GetName() string {
	if vb < 0 || vb >= virtualButtonCount {
		return "Unknown"
	}
	return buttonNames[vb]
}

// LookupButton finds an assignable button by name, ignoring case.
// Unassigned is never returned as a match.
func LookupButton(name string) (VirtualButton, bool) {
	name = strings.TrimSpace(name)
	for vb := VirtualButtonUp; vb < virtualButtonCount; vb++ {
		if strings.EqualFold(buttonNames[vb], name) {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}
