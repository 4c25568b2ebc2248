package ports

import (
	"context"
	"io"
	"testing"

	"github.com/aretw0/sboard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDocumentSourceContract runs a suite of tests to verify that a
// DocumentSource implementation adheres to the interface contract.
// The source must already hold a document named name with the given content.
func RunDocumentSourceContract(t *testing.T, src DocumentSource, name string, content []byte) {
	ctx := context.Background()

	t.Run("Open", func(t *testing.T) {
		rc, err := src.Open(ctx, name)
		require.NoError(t, err, "Open should not return error")
		defer rc.Close()

		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("Open Non-Existent", func(t *testing.T) {
		_, err := src.Open(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("List", func(t *testing.T) {
		names, err := src.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, name)
	})
}
