package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wanderplan/utils"

	"google.golang.org/genai"
)

func TestClassifyCallError(t *testing.T) {
	if got := classifyCallError(context.DeadlineExceeded); !errors.Is(got, utils.ErrTimeout) {
		t.Fatalf("deadline mapped to %v", got)
	}
	if got := classifyCallError(genai.APIError{Code: 404, Message: "Requested entity was not found"}); !errors.Is(got, utils.ErrCredential) {
		t.Fatalf("404 mapped to %v", got)
	}
	if got := classifyCallError(genai.APIError{Code: 403}); !errors.Is(got, utils.ErrCredential) {
		t.Fatalf("403 mapped to %v", got)
	}
	if got := classifyCallError(fmt.Errorf("rpc: Requested entity was not found")); !errors.Is(got, utils.ErrCredential) {
		t.Fatalf("entity-not-found text mapped to %v", got)
	}

	plain := errors.New("connection reset")
	if got := classifyCallError(plain); !errors.Is(got, plain) {
		t.Fatalf("unrelated error rewritten to %v", got)
	}
}

func TestResponseText(t *testing.T) {
	if got := responseText(nil); got != "" {
		t.Fatalf("nil response gave %q", got)
	}
	if got := responseText(&genai.GenerateContentResponse{}); got != "" {
		t.Fatalf("empty candidates gave %q", got)
	}

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: "  hello "}, {Text: "world"}},
			},
		}},
	}
	if got := responseText(resp); got != "hello world" {
		t.Fatalf("responseText = %q", got)
	}
}

func TestCitationSourcesFromGroundingChunks(t *testing.T) {
	if got := citationSources(nil); got != nil {
		t.Fatalf("nil response gave %v", got)
	}

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					nil,
					{Web: &genai.GroundingChunkWeb{URI: ""}},
					{Web: &genai.GroundingChunkWeb{URI: "https://travel.example.com"}},
				},
			},
		}},
	}
	got := citationSources(resp)
	if len(got) != 1 || got[0] != "https://travel.example.com" {
		t.Fatalf("citationSources = %v", got)
	}
}

func TestCitationSourcesFallsBackToCitations(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			CitationMetadata: &genai.CitationMetadata{
				Citations: []*genai.Citation{
					nil,
					{URI: ""},
					{URI: "https://guides.example.com"},
				},
			},
		}},
	}
	got := citationSources(resp)
	if len(got) != 1 || got[0] != "https://guides.example.com" {
		t.Fatalf("citationSources = %v", got)
	}
}
