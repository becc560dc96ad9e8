package importer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstore/internal/domain/services"
	"docstore/internal/importer"
)

func TestGeminiExtractor_NilClient(t *testing.T) {
	t.Parallel()

	e := importer.NewGeminiExtractor(nil, "")
	_, err := e.Extract(context.Background(), services.ExtractInput{
		HTML: "<html><body>hi</body></html>",
		URL:  "https://example.com",
		Name: "Example",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
