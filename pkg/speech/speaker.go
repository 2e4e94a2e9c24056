// Package speech turns reminder phrases into audio, preferring ElevenLabs
// synthesis and falling back to the system speech command.
package speech

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"nextcall/pkg/audio"
)

// ElevenLabs voice and model used for synthesis.
const (
	voiceID = "JBFqnCBsd6RMkjVDRZzb" // male british
	modelID = "eleven_multilingual_v2"
)

var ttsClient = &http.Client{Timeout: 10 * time.Second}

// SystemSpeaker implements scheduler.Speaker. With an API key it speaks
// through ElevenLabs; without one, or when the API fails, it shells out to
// the platform speech command.
type SystemSpeaker struct {
	ElevenLabsKey string
}

// Say speaks the text. Failures are logged, never returned: speech is a
// best-effort collaborator.
func (s *SystemSpeaker) Say(text string) {
	if s.ElevenLabsKey != "" {
		err := s.sayElevenLabs(text)
		if err == nil {
			return
		}
		log.Printf("ElevenLabs request failed, falling back to built-in: %v", err)
	}
	if err := sayBuiltin(text); err != nil {
		log.Printf("Built-in speech failed: %v", err)
	}
}

func (s *SystemSpeaker) sayElevenLabs(text string) error {
	// Raw PCM output so the clip can be handed straight to the audio
	// player without a decoder.
	url := fmt.Sprintf("https://api.elevenlabs.io/v1/text-to-speech/%s?output_format=pcm_44100", voiceID)

	payload, err := json.Marshal(map[string]string{
		"text":     text,
		"model_id": modelID,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("xi-api-key", s.ElevenLabsKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ttsClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	pcm, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	player := audio.PlayPCM(pcm)
	if player == nil {
		return fmt.Errorf("audio device unavailable")
	}
	player.Wait()
	return nil
}

// sayBuiltin invokes the platform speech command without blocking on it.
func sayBuiltin(text string) error {
	if runtime.GOOS == "darwin" {
		return startReaped(exec.Command("say", "-v", "Moira", text))
	}
	return startReaped(exec.Command("espeak", text))
}

// startReaped starts the command and collects its exit status in the
// background so finished speech processes do not accumulate.
func startReaped(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("Speech command exited: %v", err)
		}
	}()
	return nil
}
