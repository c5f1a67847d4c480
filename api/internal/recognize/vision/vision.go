// Package vision extracts text from photos through the Google Vision API.
package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	gvision "google.golang.org/api/vision/v1"
)

type Engine struct {
	svc *gvision.Service
}

func New(ctx context.Context, credentialsJSON []byte) (*Engine, error) {
	svc, err := gvision.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("vision service: %w", err)
	}
	return &Engine{svc: svc}, nil
}

// ExtractText runs TEXT_DETECTION and returns the full-page annotation.
// Empty string means the image carried no recognizable text.
func (e *Engine) ExtractText(ctx context.Context, image []byte) (string, error) {
	req := &gvision.BatchAnnotateImagesRequest{
		Requests: []*gvision.AnnotateImageRequest{{
			Image:    &gvision.Image{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []*gvision.Feature{{Type: "TEXT_DETECTION"}},
		}},
	}
	resp, err := e.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("vision annotate: %w", err)
	}
	if len(resp.Responses) == 0 {
		return "", nil
	}
	r := resp.Responses[0]
	if r.Error != nil {
		return "", fmt.Errorf("vision: %s", r.Error.Message)
	}
	if len(r.TextAnnotations) == 0 {
		return "", nil
	}
	return strings.TrimSpace(r.TextAnnotations[0].Description), nil
}
