package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sisters-restaurant/go-backend/pkg/e"
)

func TestGetExtensionFromMIME(t *testing.T) {
	tests := []struct {
		mime    string
		want    string
		wantErr bool
	}{
		{"image/jpeg", "jpg", false},
		{"image/jpg", "jpg", false},
		{"image/png", "png", false},
		{"image/gif", "gif", false},
		{"image/webp", "webp", false},
		{"application/pdf", "bin", true},
		{"image/svg+xml", "bin", true},
		{"", "bin", true},
	}

	for _, tc := range tests {
		t.Run(tc.mime, func(t *testing.T) {
			ext, err := GetExtensionFromMIME(tc.mime)
			assert.Equal(t, tc.want, ext)
			if tc.wantErr {
				assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
