//go:build sound

package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

func openSpeaker(m *beep.Mixer) error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(m)
	return nil
}

func withSpeakerLock(f func()) {
	speaker.Lock()
	defer speaker.Unlock()
	f()
}

func closeSpeaker() {
	speaker.Close()
}
