package internal

import (
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a press or release of a virtual button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool // Key repeat generated by the OS while held
}

// triggerThreshold is the axis value past which an analog trigger counts as pressed.
const triggerThreshold = 16000

var keyboardMap = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_x:         constants.VirtualButtonX,
	sdl.K_y:         constants.VirtualButtonY,
	sdl.K_q:         constants.VirtualButtonL1,
	sdl.K_1:         constants.VirtualButtonL2,
	sdl.K_e:         constants.VirtualButtonR1,
	sdl.K_3:         constants.VirtualButtonR2,
	sdl.K_SPACE:     constants.VirtualButtonStart,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_ESCAPE:    constants.VirtualButtonMenu,
}

var controllerMap = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

var (
	controllers  = make(map[sdl.JoystickID]*sdl.GameController)
	triggersHeld = make(map[sdl.GameControllerAxis]bool)
)

// KeyButton returns the virtual button bound to a keyboard key.
func KeyButton(key sdl.Keycode) (constants.VirtualButton, bool) {
	vb, ok := keyboardMap[key]
	return vb, ok
}

// ControllerButton returns the virtual button bound to a controller button.
func ControllerButton(button sdl.GameControllerButton) (constants.VirtualButton, bool) {
	vb, ok := controllerMap[button]
	return vb, ok
}

// TranslateEvent maps an SDL event to a virtual button event. Controller
// hotplug events are consumed here and report false.
func TranslateEvent(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		vb, ok := KeyButton(e.Keysym.Sym)
		if !ok {
			return Event{}, false
		}
		return Event{Button: vb, Pressed: e.Type == sdl.KEYDOWN, Repeat: e.Repeat != 0}, true

	case *sdl.ControllerButtonEvent:
		vb, ok := ControllerButton(sdl.GameControllerButton(e.Button))
		if !ok {
			return Event{}, false
		}
		return Event{Button: vb, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}, true

	case *sdl.ControllerAxisEvent:
		return translateTrigger(sdl.GameControllerAxis(e.Axis), e.Value)

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			closeController(e.Which)
		}
	}
	return Event{}, false
}

func translateTrigger(axis sdl.GameControllerAxis, value int16) (Event, bool) {
	var vb constants.VirtualButton
	switch axis {
	case sdl.CONTROLLER_AXIS_TRIGGERLEFT:
		vb = constants.VirtualButtonL2
	case sdl.CONTROLLER_AXIS_TRIGGERRIGHT:
		vb = constants.VirtualButtonR2
	default:
		return Event{}, false
	}

	pressed := value > triggerThreshold
	if triggersHeld[axis] == pressed {
		return Event{}, false
	}
	triggersHeld[axis] = pressed
	return Event{Button: vb, Pressed: pressed}, true
}

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		openController(i)
	}
}

func openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	if _, ok := controllers[id]; ok {
		controller.Close()
		return
	}
	controllers[id] = controller
	GetInternalLogger().Debug("Controller connected", "name", controller.Name(), "id", id)
}

func closeController(id sdl.JoystickID) {
	if controller, ok := controllers[id]; ok {
		controller.Close()
		delete(controllers, id)
		GetInternalLogger().Debug("Controller removed", "id", id)
	}
}

func closeControllers() {
	for id := range controllers {
		closeController(id)
	}
}
