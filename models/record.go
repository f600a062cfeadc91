package models

// Status is the terminal outcome of scraping a single page.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// PageMetadata holds the fixed set of meta-tag fields extracted from a page.
// Missing tags stay as empty strings so the serialized form always carries
// all five keys.
type PageMetadata struct {
	Description   string `json:"description"`
	Keywords      string `json:"keywords"`
	Author        string `json:"author"`
	OGTitle       string `json:"og_title"`
	OGDescription string `json:"og_description"`
}

// ScrapedRecord is the outcome of scraping one URL. A failed record keeps the
// input URL and leaves every content field empty.
type ScrapedRecord struct {
	URL      string       `json:"url"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Links    []string     `json:"links"`
	Metadata PageMetadata `json:"metadata"`
	Status   Status       `json:"status"`
}

// NewFailedRecord builds the uniform failed-record shape for a URL.
func NewFailedRecord(url string) ScrapedRecord {
	return ScrapedRecord{
		URL:    url,
		Links:  []string{},
		Status: StatusFailed,
	}
}
