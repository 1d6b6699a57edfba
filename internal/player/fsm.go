// Package player owns the player's state machine, the held-item slot and the looked-at cache.
package player

import (
	"context"
	"errors"
	"log"

	"gitoffice/internal/engine"

	"github.com/looplab/fsm"
)

// State is what the player is currently doing.
type State string

const (
	Idle        State = "idle"
	Walking     State = "walking"
	Interacting State = "interacting"
	Holding     State = "holding"
)

var allStates = []State{Idle, Walking, Interacting, Holding}

// CanChange is the transition rule: every state may return to Idle and Idle may go anywhere.
func CanChange(from, to State) bool {
	return from == Idle || to == Idle
}

// StateMachine is a star-shaped FSM centred on Idle.
type StateMachine struct {
	fsm *fsm.FSM

	// OnChange fires after every successful transition with the new state.
	OnChange engine.EventWithArg[State]
}

func NewStateMachine() *StateMachine {
	sm := &StateMachine{}

	// One event per target state, named after it.
	events := make(fsm.Events, 0, len(allStates))
	for _, to := range allStates {
		var src []string
		for _, from := range allStates {
			if CanChange(from, to) && from != to {
				src = append(src, string(from))
			}
		}
		events = append(events, fsm.EventDesc{Name: string(to), Src: src, Dst: string(to)})
	}

	sm.fsm = fsm.NewFSM(string(Idle), events, fsm.Callbacks{})
	return sm
}

// Current returns the current state.
func (sm *StateMachine) Current() State {
	return State(sm.fsm.Current())
}

// Is reports whether the machine is in s.
func (sm *StateMachine) Is(s State) bool {
	return sm.fsm.Is(string(s))
}

// Change moves to the target state when the rule allows it.
// Disallowed or same-state changes are silently ignored; the return value says whether the state changed.
func (sm *StateMachine) Change(to State) bool {
	if sm.Is(to) || !sm.fsm.Can(string(to)) {
		return false
	}
	if err := sm.fsm.Event(context.Background(), string(to)); err != nil {
		var noTransition fsm.NoTransitionError
		if !errors.As(err, &noTransition) {
			log.Printf("Player: state change %s -> %s failed: %v", sm.Current(), to, err)
		}
		return false
	}
	// Listeners run outside the fsm so they may change state again.
	sm.OnChange.Invoke(to)
	return true
}
