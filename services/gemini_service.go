package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"wanderplan/config/environment"
	"wanderplan/utils"

	"google.golang.org/genai"
)

// GeminiService handles both call shapes against the generation service:
// schema-constrained JSON generation and free-text generation with search
// grounding.
type GeminiService struct {
	ItineraryModel string
	ImageModel     string
	CallTimeout    time.Duration
}

// NewGeminiService creates a new instance of GeminiService
func NewGeminiService() *GeminiService {
	return &GeminiService{
		ItineraryModel: environment.GetItineraryModel(),
		ImageModel:     environment.GetImageModel(),
		CallTimeout:    60 * time.Second,
	}
}

// newClient builds a fresh client per call so a key rotated in the
// environment is picked up without a restart.
func (s *GeminiService) newClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  environment.GetGeminiKey(),
		Backend: genai.BackendGeminiAPI,
	})
}

// GenerateJSON issues one schema-constrained generation call and returns the
// raw JSON text. An empty payload maps to utils.ErrGeneration.
func (s *GeminiService) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.CallTimeout)
	defer cancel()

	client, err := s.newClient(ctx)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.4),
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	resp, err := client.Models.GenerateContent(ctx, s.ItineraryModel, genai.Text(prompt), config)
	if err != nil {
		return "", classifyCallError(err)
	}

	text := responseText(resp)
	if text == "" {
		return "", utils.ErrGeneration
	}
	return text, nil
}

// GenerateGrounded issues one free-text generation call with Google Search
// grounding and returns the text plus any cited source URLs.
func (s *GeminiService) GenerateGrounded(ctx context.Context, prompt string) (string, []string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.CallTimeout)
	defer cancel()

	client, err := s.newClient(ctx)
	if err != nil {
		return "", nil, err
	}

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := client.Models.GenerateContent(ctx, s.ImageModel, genai.Text(prompt), config)
	if err != nil {
		return "", nil, classifyCallError(err)
	}

	return responseText(resp), citationSources(resp), nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// citationSources walks the nested grounding metadata step by step. Every
// level of the response can legitimately be missing, so each one is checked
// and the fallback is simply no sources. Search grounding reports its
// sources as web grounding chunks; plain citation metadata is the backup.
func citationSources(resp *genai.GenerateContentResponse) []string {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	cand := resp.Candidates[0]

	var uris []string
	if gm := cand.GroundingMetadata; gm != nil {
		for _, chunk := range gm.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			uris = append(uris, chunk.Web.URI)
		}
	}
	if len(uris) > 0 {
		return uris
	}

	if cm := cand.CitationMetadata; cm != nil {
		for _, citation := range cm.Citations {
			if citation == nil || citation.URI == "" {
				continue
			}
			uris = append(uris, citation.URI)
		}
	}
	return uris
}

// classifyCallError maps transport failures onto the error taxonomy. An
// entity-not-found class of error means the key or project is wrong, which
// gets its own remediation path on the client.
func classifyCallError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return utils.ErrTimeout
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound, http.StatusUnauthorized, http.StatusForbidden:
			return utils.ErrCredential
		}
	}
	if strings.Contains(err.Error(), "Requested entity was not found") {
		return utils.ErrCredential
	}
	return err
}
