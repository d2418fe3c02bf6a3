package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSynthesizeNotConfigured(t *testing.T) {
	svc := &SpeechService{client: &http.Client{}}

	_, err := svc.Synthesize(context.Background(), "hello")
	if !errors.Is(err, ErrSpeechNotConfigured) {
		t.Errorf("expected ErrSpeechNotConfigured, got %v", err)
	}
}

func TestSynthesizeSendsVoiceRequest(t *testing.T) {
	var captured speechRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/text-to-speech/test-voice" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "test-key" {
			t.Errorf("unexpected api key header %q", r.Header.Get("xi-api-key"))
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		w.Write([]byte("audio-bytes"))
	}))
	defer server.Close()

	svc := &SpeechService{
		apiKey:  "test-key",
		voiceID: "test-voice",
		baseURL: server.URL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}

	audio, err := svc.Synthesize(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(audio) != "audio-bytes" {
		t.Errorf("audio = %q, want the server payload", audio)
	}

	if captured.Text != "hello world" {
		t.Errorf("request text = %q, want %q", captured.Text, "hello world")
	}
	if captured.ModelID != "eleven_monolingual_v1" {
		t.Errorf("model id = %q", captured.ModelID)
	}
	if captured.VoiceSettings.Stability != 0.71 || captured.VoiceSettings.SimilarityBoost != 0.75 {
		t.Errorf("unexpected voice settings %+v", captured.VoiceSettings)
	}
}

func TestSynthesizeBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := &SpeechService{
		apiKey:  "test-key",
		voiceID: "test-voice",
		baseURL: server.URL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}

	if _, err := svc.Synthesize(context.Background(), "hello"); err == nil {
		t.Error("expected an error on a non-200 status")
	}
}

func TestNilProgressCacheIsInert(t *testing.T) {
	var cache *ProgressCache

	if _, ok := cache.Get(context.Background(), "user-1"); ok {
		t.Error("nil cache should always miss")
	}
	cache.Set(context.Background(), "user-1", nil)
	cache.Invalidate(context.Background(), "user-1")

	if !cache.AcquireResetLock(context.Background(), "2025-03-14") {
		t.Error("nil cache should grant the reset lock")
	}
}
