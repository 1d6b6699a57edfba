package audio

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var deviceOpen bool

// Init opens the audio device.
func Init() {
	rl.InitAudioDevice()
	deviceOpen = rl.IsAudioDeviceReady()
	if !deviceOpen {
		log.Printf("Audio: device unavailable, cues will be silent")
	}
}

// Close shuts down the audio device.
func Close() {
	if !deviceOpen {
		return
	}
	rl.CloseAudioDevice()
	deviceOpen = false
}

// Bank holds one loaded raylib sound per cue.
type Bank struct {
	mu      sync.Mutex
	sounds  map[Cue]rl.Sound
	looping map[Cue]bool
	volume  float32
	muted   bool
}

// CuePath is where a cue's sound file lives.
func CuePath(dir string, c Cue) string {
	return filepath.Join(dir, c.String()+".wav")
}

// LoadBank loads every cue found in dir. Missing files are skipped with a warning.
func LoadBank(dir string) *Bank {
	b := &Bank{sounds: make(map[Cue]rl.Sound), looping: make(map[Cue]bool), volume: 1}
	if !deviceOpen {
		return b
	}
	for _, c := range AllCues {
		path := CuePath(dir, c)
		if _, err := os.Stat(path); err != nil {
			log.Printf("Audio: no sound for %s (%s)", c, path)
			continue
		}
		sound := rl.LoadSound(path)
		if !rl.IsSoundValid(sound) {
			log.Printf("Audio: failed to load %s", path)
			continue
		}
		b.sounds[c] = sound
	}
	log.Printf("Audio: loaded %d/%d cues from %s", len(b.sounds), len(AllCues), dir)
	return b
}

// Play restarts the cue's sound. Unknown or unloaded cues are ignored.
func (b *Bank) Play(c Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.muted {
		return
	}
	b.start(c)
}

// start plays c from the beginning. Caller holds mu.
func (b *Bank) start(c Cue) {
	sound, ok := b.sounds[c]
	if !ok {
		return
	}
	rl.SetSoundVolume(sound, b.volume*c.Volume())
	rl.PlaySound(sound)
}

// Loop plays c and restarts it from Update whenever it ends.
func (b *Bank) Loop(c Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.looping[c] = true
	if !b.muted {
		b.start(c)
	}
}

// Stop ends c and drops it from the loop set.
func (b *Bank) Stop(c Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.looping, c)
	if sound, ok := b.sounds[c]; ok {
		rl.StopSound(sound)
	}
}

// Looping reports whether c is in the loop set.
func (b *Bank) Looping(c Cue) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.looping[c]
}

// Update restarts looping cues that have finished. Call once per frame.
func (b *Bank) Update() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.muted {
		return
	}
	for c := range b.looping {
		sound, ok := b.sounds[c]
		if ok && !rl.IsSoundPlaying(sound) {
			b.start(c)
		}
	}
}

// SetVolume sets the volume applied to every cue, clamped to [0, 1].
func (b *Bank) SetVolume(v float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	b.volume = v
}

// SetMuted silences the bank. Muting stops loops; they resume on the next Update after unmuting.
func (b *Bank) SetMuted(muted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = muted
	if !muted {
		return
	}
	for c := range b.looping {
		if sound, ok := b.sounds[c]; ok {
			rl.StopSound(sound)
		}
	}
}

// Loaded reports how many cues have a sound.
func (b *Bank) Loaded() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sounds)
}

// Unload frees every sound.
func (b *Bank) Unload() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.sounds {
		rl.UnloadSound(s)
	}
	b.sounds = make(map[Cue]rl.Sound)
	b.looping = make(map[Cue]bool)
}
