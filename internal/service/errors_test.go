package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateCatalogError(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name     string
		status   int
		kind     ErrorKind
		sentinel error
	}{
		{"unauthorized", 401, ErrKindAuthentication, ErrAuthentication},
		{"payment required", 402, ErrKindQuotaExceeded, ErrQuotaExceeded},
		{"not found", 404, ErrKindCatalogUnavailable, ErrCatalogUnavailable},
		{"server error", 500, ErrKindCatalogUnavailable, ErrCatalogUnavailable},
		{"too many requests", 429, ErrKindCatalogUnavailable, ErrCatalogUnavailable},
		{"network failure", 0, ErrKindCatalogUnavailable, ErrCatalogUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TranslateCatalogError(opSearch, tt.status, cause)
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.status, err.Status)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, cause)

			for _, other := range []error{ErrAuthentication, ErrQuotaExceeded, ErrCatalogUnavailable, ErrMissingIdentifier} {
				if other != tt.sentinel {
					assert.NotErrorIs(t, err, other)
				}
			}
		})
	}
}

func TestTranslateCatalogErrorMessages(t *testing.T) {
	assert.Equal(t, ErrAuthentication.Error(), TranslateCatalogError(opDetail, 401, nil).Message)
	assert.Equal(t, ErrQuotaExceeded.Error(), TranslateCatalogError(opDetail, 402, nil).Message)
	assert.Contains(t, TranslateCatalogError(opDetail, 404, nil).Message, "recipe details")
	assert.Equal(t, ErrCatalogUnavailable.Error(), TranslateCatalogError(opSearch, 500, nil).Message)
	assert.Equal(t, "catalog search failed with status 500: "+ErrCatalogUnavailable.Error(), TranslateCatalogError(opSearch, 500, nil).Error())
	assert.Equal(t, "catalog detail failed: could not retrieve recipe details from the recipe catalog", TranslateCatalogError(opDetail, 0, nil).Error())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", TranslateCatalogError(opSearch, 402, nil))
	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrKindQuotaExceeded, kind)

	kind, ok = KindOf(ErrMissingIdentifier)
	require.True(t, ok)
	assert.Equal(t, ErrKindMissingIdentifier, kind)

	var ce *CatalogError
	assert.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, 402, ce.Status)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
	_, ok = KindOf(nil)
	assert.False(t, ok)
}
