package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"wanderplan/models"
	"wanderplan/queue"
	"wanderplan/utils"
)

// groundedGenerator is the slice of GeminiService the resolver needs.
type groundedGenerator interface {
	GenerateGrounded(ctx context.Context, prompt string) (string, []string, error)
}

// DefaultImageSource is the attribution fallback when the response carries
// no citation metadata.
const DefaultImageSource = "https://maps.google.com/"

// ImageQueueDelay paces search-grounded lookups. Longer than a plain
// generation delay would need to be: grounded calls fall over first when
// a whole itinerary's cards fire at once.
const ImageQueueDelay = 2 * time.Second

// ImageService resolves zero-or-one public photo URL per place through a
// search-grounded generation call. All lookups go through one shared
// throttled queue so they serialize globally no matter how many cards
// request them concurrently.
type ImageService struct {
	Gemini groundedGenerator
	Queue  *queue.Queue[*models.ImageResult]
}

// NewImageService wires the resolver to the shared queue. The queue is
// injected rather than package-global so the single-instance-per-process
// sharing is visible at the call site.
func NewImageService(imageQueue *queue.Queue[*models.ImageResult]) *ImageService {
	return &ImageService{
		Gemini: NewGeminiService(),
		Queue:  imageQueue,
	}
}

// FindPlaceImage enqueues one lookup and waits for it. A nil result with a
// nil error means no qualifying image was found; that is the expected
// outcome for any lookup failure and must never fail the itinerary display.
// Identical inputs issue independent calls, there is no cache.
func (s *ImageService) FindPlaceImage(ctx context.Context, placeName, city string) (*models.ImageResult, error) {
	if strings.TrimSpace(placeName) == "" || strings.TrimSpace(city) == "" {
		return nil, utils.NewCustomError(http.StatusBadRequest, "place and city are required")
	}

	pending := s.Queue.Enqueue(ctx, func(ctx context.Context) (*models.ImageResult, error) {
		return s.lookup(ctx, placeName, city), nil
	})
	return pending.Wait(ctx)
}

func (s *ImageService) lookup(ctx context.Context, placeName, city string) *models.ImageResult {
	prompt := buildImagePrompt(placeName, city)

	text, sources, err := s.Gemini.GenerateGrounded(ctx, prompt)
	if err != nil {
		log.Printf("image lookup failed for %q: %v", placeName, err)
		return nil
	}

	url := extractImageURL(text)
	if url == "" {
		return nil
	}

	source := DefaultImageSource
	if len(sources) > 0 {
		source = sources[0]
	}
	return &models.ImageResult{URL: url, SourceURL: source}
}

func buildImagePrompt(placeName, city string) string {
	return fmt.Sprintf(`Find a direct, high-quality public image URL (jpg, png, webp) for the specific place "%s" in "%s".
Search for photos that appear in Google Maps listings, travel guides, or official websites for this exact location.
Prefer reputable media or tourism sources.
Return ONLY the raw URL string. Do not use Markdown. If no good URL is found, return "null".`, placeName, city)
}

var urlRegexp = regexp.MustCompile(`https?://[^\s"'<>]+`)

// extractImageURL scans the response for the first HTTP(S) URL and trims
// the punctuation that attaches to URLs embedded in prose.
func extractImageURL(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, "null") {
		return ""
	}
	match := urlRegexp.FindString(text)
	if match == "" {
		return ""
	}
	return strings.TrimRight(match, `.,;:!?)]}'"`)
}
