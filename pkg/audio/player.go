// Package audio plays raw PCM clips (synthesized speech) through oto.
package audio

import (
	"bytes"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Playback format for synthesized speech clips: 44.1 kHz mono s16le, the
// raw PCM layout the ElevenLabs API emits.
const (
	SampleRate   = 44100
	ChannelCount = 1
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// Player manages one playing clip with cancellation support
type Player struct {
	stopChan chan struct{}
	stopOnce sync.Once
	player   *oto.Player
}

// initAudioContext initializes the global audio context once
func initAudioContext() {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("Audio context initialized successfully")
	})
}

// PlayPCM plays a raw PCM clip once and returns a Player for control, or
// nil if the audio device is unavailable.
func PlayPCM(pcm []byte) *Player {
	initAudioContext()

	if !audioCtxReady || globalAudioCtx == nil {
		log.Printf("Audio context not ready")
		return nil
	}

	p := &Player{
		stopChan: make(chan struct{}),
		player:   globalAudioCtx.NewPlayer(bytes.NewReader(pcm)),
	}

	// Play starts playing the sound and returns without waiting
	p.player.Play()
	go p.watchLoop()

	return p
}

func (p *Player) watchLoop() {
	for p.player.IsPlaying() {
		select {
		case <-p.stopChan:
			p.player.Pause()
			p.player.Close()
			log.Println("Audio player closed")
			return
		case <-time.After(10 * time.Millisecond):
			// Continue checking
		}
	}

	if err := p.player.Close(); err != nil {
		log.Printf("Failed to close audio player: %v", err)
	}
}

// Wait blocks until the clip has finished playing or Stop is called.
func (p *Player) Wait() {
	if p == nil {
		return
	}
	for {
		select {
		case <-p.stopChan:
			return
		case <-time.After(10 * time.Millisecond):
		}
		if !p.player.IsPlaying() {
			return
		}
	}
}

// Stop cancels playback
func (p *Player) Stop() {
	if p == nil {
		return
	}
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
}
