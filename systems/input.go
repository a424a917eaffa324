package systems

import (
	"strings"

	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.StickX, input.StickY = 0, 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge the analog stick into the directional actions. The raw values
	// are kept so the dash can head in any direction.
	x, y, gpID, ok := getAnalogStick(gamepadIDs)
	if ok {
		input.StickX, input.StickY = x, y
		gamepadUsed = true
		activeGamepadID = gpID
		if x < 0 {
			input.Current[cfg.ActionMoveLeft] = true
			input.Current[cfg.ActionMenuLeft] = true
		}
		if x > 0 {
			input.Current[cfg.ActionMoveRight] = true
			input.Current[cfg.ActionMenuRight] = true
		}
		if y < 0 {
			input.Current[cfg.ActionMoveUp] = true
			input.Current[cfg.ActionMenuUp] = true
		}
		if y > 0 {
			input.Current[cfg.ActionMoveDown] = true
			input.Current[cfg.ActionMenuDown] = true
		}
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	// Buttons still held from the previous scene do not count as presses.
	if !input.Primed {
		input.Previous = input.Current
		input.Primed = true
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStick reads the left stick of the first gamepad pushed past the
// deadzone. Axes below the deadzone read as zero.
func getAnalogStick(gamepads []ebiten.GamepadID) (x, y float64, gpID ebiten.GamepadID, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if h > -deadzone && h < deadzone {
			h = 0
		}
		if v > -deadzone && v < deadzone {
			v = 0
		}
		if h != 0 || v != 0 {
			return h, v, id, true
		}
	}
	return 0, 0, 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// MovementInput converts the action state into the snapshot the player step
// consumes. The stick wins over the digital directions when it is pushed.
func MovementInput(input *components.InputData) movement.Input {
	in := movement.Input{
		Jump:   input.Current[cfg.ActionJump],
		Dash:   input.Current[cfg.ActionDash],
		Switch: GetAction(input, cfg.ActionSwitch).JustPressed,
		Peek:   input.Current[cfg.ActionPeek],
	}

	if input.StickX != 0 || input.StickY != 0 {
		in.Horizontal = input.StickX
		in.Vertical = -input.StickY
		return in
	}
	if input.Current[cfg.ActionMoveRight] {
		in.Horizontal++
	}
	if input.Current[cfg.ActionMoveLeft] {
		in.Horizontal--
	}
	if input.Current[cfg.ActionMoveUp] {
		in.Vertical++
	}
	if input.Current[cfg.ActionMoveDown] {
		in.Vertical--
	}
	return in
}

// ActionJustPressed reports whether id went down this frame. Scenes use it
// for input outside the ECS systems.
func ActionJustPressed(e *ecs.ECS, id cfg.ActionID) bool {
	return GetAction(getOrCreateInput(e), id).JustPressed
}
