package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"wanderplan/models"
	"wanderplan/queue"
	"wanderplan/utils"
)

type stubGroundedGenerator struct {
	text    string
	sources []string
	err     error
	calls   int
}

func (s *stubGroundedGenerator) GenerateGrounded(ctx context.Context, prompt string) (string, []string, error) {
	s.calls++
	return s.text, s.sources, s.err
}

func newTestImageService(stub *stubGroundedGenerator) *ImageService {
	return &ImageService{
		Gemini: stub,
		Queue:  queue.New[*models.ImageResult](time.Millisecond),
	}
}

func TestExtractImageURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://example.com/photo.jpg", "https://example.com/photo.jpg"},
		{"https://example.com/photo.jpg.", "https://example.com/photo.jpg"},
		{"Here you go: https://example.com/photo.jpg, enjoy!", "https://example.com/photo.jpg"},
		{"(see https://example.com/a.png)", "https://example.com/a.png"},
		{"http://example.com/b.webp?w=1200&q=80", "http://example.com/b.webp?w=1200&q=80"},
		{"null", ""},
		{"NULL", ""},
		{"", ""},
		{"   ", ""},
		{"no image found for this place", ""},
	}
	for _, tc := range cases {
		if got := extractImageURL(tc.in); got != tc.want {
			t.Fatalf("extractImageURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFindPlaceImageWithAttribution(t *testing.T) {
	stub := &stubGroundedGenerator{
		text:    "https://media.example.com/kinkakuji.jpg",
		sources: []string{"https://travel.example.com/kyoto", "https://other.example.com"},
	}
	svc := newTestImageService(stub)

	result, err := svc.FindPlaceImage(context.Background(), "Kinkaku-ji", "Kyoto")
	if err != nil {
		t.Fatal(err)
	}
	if result == nil {
		t.Fatal("expected an image result")
	}
	if result.URL != "https://media.example.com/kinkakuji.jpg" {
		t.Fatalf("url = %q", result.URL)
	}
	if result.SourceURL != "https://travel.example.com/kyoto" {
		t.Fatalf("source = %q, want first citation", result.SourceURL)
	}
}

func TestFindPlaceImageAttributionFallback(t *testing.T) {
	stub := &stubGroundedGenerator{text: "https://media.example.com/x.jpg"}
	svc := newTestImageService(stub)

	result, err := svc.FindPlaceImage(context.Background(), "Gion", "Kyoto")
	if err != nil {
		t.Fatal(err)
	}
	if result.SourceURL != DefaultImageSource {
		t.Fatalf("source = %q, want default %q", result.SourceURL, DefaultImageSource)
	}
}

func TestFindPlaceImageAbsorbsFailures(t *testing.T) {
	cases := []struct {
		name string
		stub *stubGroundedGenerator
	}{
		{"call error", &stubGroundedGenerator{err: errors.New("rate limited")}},
		{"timeout", &stubGroundedGenerator{err: utils.ErrTimeout}},
		{"null response", &stubGroundedGenerator{text: "null"}},
		{"empty response", &stubGroundedGenerator{text: ""}},
		{"no url in response", &stubGroundedGenerator{text: "I could not find a suitable photo."}},
	}
	for _, tc := range cases {
		svc := newTestImageService(tc.stub)
		result, err := svc.FindPlaceImage(context.Background(), "Somewhere", "Kyoto")
		if err != nil {
			t.Fatalf("%s: image failures must not surface errors, got %v", tc.name, err)
		}
		if result != nil {
			t.Fatalf("%s: expected absent result, got %+v", tc.name, result)
		}
	}
}

func TestFindPlaceImageRequiresInputs(t *testing.T) {
	svc := newTestImageService(&stubGroundedGenerator{})

	for _, args := range [][2]string{{"", "Kyoto"}, {"Gion", ""}, {"  ", "  "}} {
		_, err := svc.FindPlaceImage(context.Background(), args[0], args[1])
		var customErr *utils.CustomError
		if !errors.As(err, &customErr) {
			t.Fatalf("FindPlaceImage(%q, %q) error = %v, want CustomError", args[0], args[1], err)
		}
	}
}

func TestFindPlaceImageDoesNotCache(t *testing.T) {
	stub := &stubGroundedGenerator{text: "https://media.example.com/x.jpg"}
	svc := newTestImageService(stub)

	for i := 0; i < 2; i++ {
		if _, err := svc.FindPlaceImage(context.Background(), "Gion", "Kyoto"); err != nil {
			t.Fatal(err)
		}
	}
	if stub.calls != 2 {
		t.Fatalf("generator called %d times for identical inputs, want 2 (no caching)", stub.calls)
	}
}

type blockingGroundedGenerator struct {
	release chan struct{}
}

func (s *blockingGroundedGenerator) GenerateGrounded(ctx context.Context, prompt string) (string, []string, error) {
	<-s.release
	return "https://media.example.com/x.jpg", nil, nil
}

func TestFindPlaceImageSharedQueueSerializes(t *testing.T) {
	const delay = 20 * time.Millisecond
	release := make(chan struct{})
	svc := &ImageService{
		Gemini: &blockingGroundedGenerator{release: release},
		Queue:  queue.New[*models.ImageResult](delay),
	}

	done := make(chan struct{}, 3)
	for i := 0; i < 3; i++ {
		go func() {
			if _, err := svc.FindPlaceImage(context.Background(), "Gion", "Kyoto"); err != nil {
				t.Error(err)
			}
			done <- struct{}{}
		}()
	}

	// Wait until two lookups are queued behind the in-flight one, then let
	// them all run.
	for svc.Queue.Len() < 2 {
		time.Sleep(time.Millisecond)
	}
	start := time.Now()
	close(release)
	for i := 0; i < 3; i++ {
		<-done
	}

	// three serialized lookups with two pacing gaps between them
	if elapsed := time.Since(start); elapsed < 2*delay {
		t.Fatalf("three lookups finished in %v, pacing not applied", elapsed)
	}
}
