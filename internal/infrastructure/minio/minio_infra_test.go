package minio

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisters-restaurant/go-backend/internal/cfg"
	"github.com/sisters-restaurant/go-backend/internal/domain"
	"github.com/sisters-restaurant/go-backend/internal/usecase"
	"github.com/sisters-restaurant/go-backend/pkg/e"
)

type fakeImageRepo struct {
	mu       sync.Mutex
	uploaded []*domain.Image
	deleted  []string
	failures int
}

func (f *fakeImageRepo) Upload(_ context.Context, image *domain.Image) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploaded = append(f.uploaded, image)
	return image.ObjectKey, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return fmt.Errorf("transient storage error")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeImageRepo) PublicURL(key string) string {
	return "http://minio.local/menu-images/" + key
}

func (f *fakeImageRepo) deletedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any) {}
func (nopLogger) Warnf(string, ...any) {}
func (nopLogger) Errorf(error, string, ...any) {}

func testCfg() *cfg.MinIOCfg {
	return &cfg.MinIOCfg{
		MinioEndpoint:     "minio.local",
		BucketName:        "menu-images",
		MinioRootUser:     "user",
		MinioRootPassword: "pass",
		UploadFolder:      "sisters-restaurant",
		MaxFileSize:       5 << 20,
	}
}

func TestUploadImage_BuildsObjectKeyFromName(t *testing.T) {
	repo := &fakeImageRepo{}
	infra := NewMinioInfrastructure(repo, testCfg(), nopLogger{}, context.Background())

	res, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq([]byte{1, 2, 3}, "image/png", 3, "My Dish.png"))

	require.NoError(t, err)
	require.Len(t, repo.uploaded, 1)

	key := repo.uploaded[0].ObjectKey
	assert.True(t, strings.HasPrefix(key, "sisters-restaurant/My-Dish-"), "unexpected key %s", key)
	assert.True(t, strings.HasSuffix(key, ".png"), "unexpected key %s", key)
	assert.Equal(t, key, res.Key)
	assert.Equal(t, "http://minio.local/menu-images/"+key, res.URL)
}

func TestUploadImage_DisabledWithoutRepo(t *testing.T) {
	infra := NewMinioInfrastructure(nil, testCfg(), nopLogger{}, context.Background())

	assert.False(t, infra.Enabled())

	_, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq([]byte{1}, "image/png", 1, "a.png"))
	assert.ErrorIs(t, err, e.ErrImageStoreDisabled)
}

func TestUploadImage_EmptyBuffer(t *testing.T) {
	infra := NewMinioInfrastructure(&fakeImageRepo{}, testCfg(), nopLogger{}, context.Background())

	_, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq(nil, "image/png", 0, "a.png"))

	assert.ErrorIs(t, err, e.ErrEmptyImage)
}

func TestUploadImage_OversizedPayload(t *testing.T) {
	c := testCfg()
	c.MaxFileSize = 10
	infra := NewMinioInfrastructure(&fakeImageRepo{}, c, nopLogger{}, context.Background())

	_, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq(make([]byte, 11), "image/png", 11, "a.png"))

	assert.ErrorIs(t, err, e.ErrFileTooLarge)
}

func TestUploadImage_UnsupportedMime(t *testing.T) {
	infra := NewMinioInfrastructure(&fakeImageRepo{}, testCfg(), nopLogger{}, context.Background())

	_, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq([]byte{1}, "application/pdf", 1, "menu.pdf"))

	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}

func TestDeleteImage_RunsInBackground(t *testing.T) {
	repo := &fakeImageRepo{}
	infra := NewMinioInfrastructure(repo, testCfg(), nopLogger{}, context.Background())

	infra.DeleteImage("sisters-restaurant/old.png")

	waitCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(waitCtx))

	assert.Equal(t, []string{"sisters-restaurant/old.png"}, repo.deletedKeys())
}

func TestDeleteImage_RetriesTransientFailures(t *testing.T) {
	repo := &fakeImageRepo{failures: 2}
	infra := NewMinioInfrastructure(repo, testCfg(), nopLogger{}, context.Background())

	infra.DeleteImage("sisters-restaurant/flaky.png")

	waitCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(waitCtx))

	assert.Equal(t, []string{"sisters-restaurant/flaky.png"}, repo.deletedKeys())
}

func TestDeleteImage_NoopForEmptyKeyAndDisabledStore(t *testing.T) {
	repo := &fakeImageRepo{}
	infra := NewMinioInfrastructure(repo, testCfg(), nopLogger{}, context.Background())
	infra.DeleteImage("")

	disabled := NewMinioInfrastructure(nil, testCfg(), nopLogger{}, context.Background())
	disabled.DeleteImage("some-key")

	waitCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(waitCtx))
	require.NoError(t, disabled.WaitForCleanup(waitCtx))

	assert.Empty(t, repo.deletedKeys())
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dish.png", "dish"},
		{"My Dish.png", "My-Dish"},
		{"../../../etc/passwd.png", "passwd"},
		{".png", "image"},
		{"", "image"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, baseName(tc.in), "input %q", tc.in)
	}
}
