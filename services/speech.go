package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"main/utils"
	"net/http"
	"time"
)

// ErrSpeechNotConfigured reports a missing speech API credential. The
// handler answers with a fallback payload so the client synthesizes locally.
var ErrSpeechNotConfigured = errors.New("speech API key is not configured")

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type speechRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type SpeechService struct {
	apiKey  string
	voiceID string
	baseURL string
	client  *http.Client
}

// NewSpeechService builds the ElevenLabs-backed synthesizer from the
// environment.
func NewSpeechService() *SpeechService {
	return &SpeechService{
		apiKey:  utils.GetEnvAsString("ELEVENLABS_API_KEY", ""),
		voiceID: utils.GetEnvAsString("ELEVENLABS_VOICE_ID", "EXAVITQu4vr4xnSDxMaL"),
		baseURL: utils.GetEnvAsString("ELEVENLABS_API_URL", "https://api.elevenlabs.io/v1"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Synthesize turns text into audio bytes via the remote voice API.
func (s *SpeechService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if s.apiKey == "" {
		return nil, ErrSpeechNotConfigured
	}

	payload := speechRequest{
		Text:    text,
		ModelID: "eleven_monolingual_v1",
		VoiceSettings: voiceSettings{
			Stability:       0.71,
			SimilarityBoost: 0.75,
			Style:           0,
			UseSpeakerBoost: true,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", s.baseURL, s.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		utils.TrackError("speech", "request_failed")
		return nil, fmt.Errorf("speech synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.TrackError("speech", "bad_status")
		return nil, fmt.Errorf("speech synthesis failed with status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.TrackError("speech", "read_failed")
		return nil, err
	}
	return audio, nil
}
