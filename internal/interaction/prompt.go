package interaction

import (
	"gitoffice/internal/components"
	"gitoffice/internal/player"
)

// Prompt is the crosshair hint for what the player holds and looks at.
// looking is false when nothing interactable is under the crosshair.
func Prompt(state player.State, held player.HeldKind, looked components.Kind, looking bool) string {
	if state == player.Interacting {
		return ""
	}
	if !looking {
		switch held {
		case player.HeldHammer:
			return "[MOUSE1] Swing\n[MOUSE2] Throw"
		case player.HeldLine, player.HeldBundle:
			return "[MOUSE2] Throw"
		}
		return ""
	}

	if looked == components.KindTerminal {
		return "[MOUSE1] Interact"
	}
	switch held {
	case player.Empty:
		return "[MOUSE1] Pickup"
	case player.HeldHammer:
		return "[MOUSE1] Swing\n[MOUSE2] Swap"
	}
	if looked == components.KindHammer {
		return "[MOUSE2] Swap"
	}
	return "[MOUSE1] Attach\n[MOUSE2] Swap"
}
