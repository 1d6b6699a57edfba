package player

import "gitoffice/internal/components"

// HoldingSpeedMultiplier slows the player while carrying something.
const HoldingSpeedMultiplier = 0.75

// GateMovement configures the controller for the current state before it steers.
func GateMovement(sm *StateMachine, fps *components.FPSController, holdingMult float32) {
	fps.Frozen = sm.Is(Interacting)
	if sm.Is(Holding) {
		fps.SpeedMultiplier = holdingMult
	} else {
		fps.SpeedMultiplier = 1
	}
}
