package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/web-scraper/models"
	"github.com/dtnitsch/web-scraper/pkg/db"
)

func testDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestRender_EmptyDatabase(t *testing.T) {
	b := New(testDB(t))

	var buf bytes.Buffer
	require.NoError(t, b.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "Total pages scraped:  0")
	assert.Contains(t, out, "No successful pages yet")
	assert.Contains(t, out, "No content to analyze")
	assert.Contains(t, out, "No completed sessions")
}

func TestRender_WithData(t *testing.T) {
	database := testDB(t)

	english := strings.Repeat("the scraper collects structured data from web pages ", 4)
	_, err := database.InsertRecord(models.ScrapedRecord{
		URL:     "https://example.com/one",
		Title:   "One",
		Content: english,
		Status:  models.StatusSuccess,
	})
	require.NoError(t, err)
	_, err = database.InsertRecord(models.ScrapedRecord{
		URL:     "https://example.com/two",
		Title:   "Two",
		Content: english,
		Status:  models.StatusSuccess,
	})
	require.NoError(t, err)
	_, err = database.InsertRecord(models.NewFailedRecord("https://other.org/broken"))
	require.NoError(t, err)

	_, err = database.InsertStats(models.SessionStats{
		SessionID:  "20240601_100000",
		TotalPages: 3,
		Successful: 2,
		Failed:     1,
		Duration:   2.5,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(database).Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "Total pages scraped:  3")
	assert.Contains(t, out, "Successful:           2")
	assert.Contains(t, out, "Failed:               1")
	assert.Contains(t, out, "Domain statistics (2 unique)")
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "scraper")
	assert.Contains(t, out, "English")
	assert.Contains(t, out, "Session 20240601_100000: 2/3 successful in 2.50s")
}
