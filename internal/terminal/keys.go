package terminal

import rl "github.com/gen2brain/raylib-go/raylib"

// Keys is one frame of keyboard input.
type Keys struct {
	Chars     []rune
	Backspace bool
	Enter     bool
	// Pressed counts fresh key presses, each of which clicks.
	Pressed int
}

// ReadKeys drains raylib's key and character queues.
func ReadKeys() Keys {
	var k Keys
	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		k.Chars = append(k.Chars, rune(r))
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		k.Pressed++
	}
	k.Backspace = rl.IsKeyPressed(rl.KeyBackspace)
	k.Enter = rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)
	return k
}
