package models

// ImageResult is a best-effort photo for one place. URL points at what the
// search-grounded lookup believes is a real photograph; it is never verified
// for reachability, the client falls back to a placeholder on load failure.
type ImageResult struct {
	URL       string `json:"url"`
	SourceURL string `json:"source_url"`
}
