package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sisters-restaurant/go-backend/pkg/e"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", e.ErrItemNotFound, http.StatusNotFound, e.ErrItemNotFound.Error()},
		{"wrapped not found", e.Wrap("MenuUseCase.DeleteItem", e.ErrItemNotFound), http.StatusNotFound, e.ErrItemNotFound.Error()},
		{"missing fields", e.ErrMissingFields, http.StatusBadRequest, e.ErrMissingFields.Error()},
		{"invalid category", e.ErrInvalidCategory, http.StatusBadRequest, e.ErrInvalidCategory.Error()},
		{"category mismatch", e.ErrCategoryMismatch, http.StatusBadRequest, e.ErrCategoryMismatch.Error()},
		{"invalid price", e.ErrInvalidPrice, http.StatusBadRequest, e.ErrInvalidPrice.Error()},
		{"invalid body", e.ErrInvalidBody, http.StatusBadRequest, e.ErrInvalidBody.Error()},
		{"file too large", e.ErrFileTooLarge, http.StatusBadRequest, e.ErrFileTooLarge.Error()},
		{"store disabled", e.ErrImageStoreDisabled, http.StatusBadRequest, e.ErrImageStoreDisabled.Error()},
		{"unknown error hidden", fmt.Errorf("pq: connection reset"), http.StatusInternalServerError, e.ErrInternalServerError.Error()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestIsAllowedImage(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		mimeType string
		want     bool
	}{
		{"jpeg", "dish.jpeg", "image/jpeg", true},
		{"jpg", "dish.jpg", "image/jpeg", true},
		{"png", "dish.png", "image/png", true},
		{"gif", "dish.gif", "image/gif", true},
		{"webp", "dish.webp", "image/webp", true},
		{"uppercase name", "DISH.PNG", "image/png", true},
		{"pdf", "menu.pdf", "application/pdf", false},
		{"image mime but bad extension", "script.exe", "image/png", false},
		{"image extension but bad mime", "fake.png", "application/octet-stream", false},
		{"svg not allowed", "logo.svg", "image/svg+xml", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isAllowedImage(tc.filename, tc.mimeType))
		})
	}
}
