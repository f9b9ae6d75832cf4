package speech

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	"dragontravel/models"
)

// Synthesizer renders text into spoken MP3 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

// GoogleSynthesizer uses Google Cloud Text-to-Speech.
type GoogleSynthesizer struct {
	CredentialsFile string
}

func languageCode(language string) string {
	if language == models.LangSpanish {
		return "es-ES"
	}
	return "en-US"
}

// Synthesize creates a client per call, matching how the transcription side
// talks to the speech API.
func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(g.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("create tts client: %w", err)
	}
	defer client.Close()

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCode(language),
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	return resp.AudioContent, nil
}
