//go:build !sound

package audio

import "github.com/gopxl/beep"

func openSpeaker(*beep.Mixer) error {
	return ErrNoSpeaker
}

func withSpeakerLock(f func()) {
	f()
}

func closeSpeaker() {}
