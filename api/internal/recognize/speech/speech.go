// Package speech transcribes audio through the Google Speech-to-Text API.
package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	gspeech "google.golang.org/api/speech/v1"
)

type Engine struct {
	svc      *gspeech.Service
	language string
}

func New(ctx context.Context, credentialsJSON []byte, language string) (*Engine, error) {
	svc, err := gspeech.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("speech service: %w", err)
	}
	return &Engine{svc: svc, language: language}, nil
}

// Transcribe recognizes speech in an audio payload. Telegram voice notes
// are OGG/Opus at 48 kHz; other containers (WAV, FLAC) carry their own
// header, so the encoding is left unspecified and the API reads it.
func (e *Engine) Transcribe(ctx context.Context, audio []byte, mime string) (string, error) {
	cfg := &gspeech.RecognitionConfig{
		LanguageCode:               e.language,
		EnableAutomaticPunctuation: true,
		Model:                      "latest_long",
	}
	low := strings.ToLower(mime)
	if strings.Contains(low, "ogg") || strings.Contains(low, "opus") {
		cfg.Encoding = "OGG_OPUS"
		cfg.SampleRateHertz = 48000
	}

	req := &gspeech.RecognizeRequest{
		Config: cfg,
		Audio:  &gspeech.RecognitionAudio{Content: base64.StdEncoding.EncodeToString(audio)},
	}
	resp, err := e.svc.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("speech recognize: %w", err)
	}

	var parts []string
	for _, res := range resp.Results {
		if len(res.Alternatives) > 0 {
			if t := strings.TrimSpace(res.Alternatives[0].Transcript); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, " "), nil
}
