package media

import (
	"testing"

	entmedia "github.com/pezeshkyar/checkup_backend/internal/repo/media"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		mime string
		want entmedia.Category
	}{
		{"image/png", entmedia.CategoryImage},
		{"image/jpeg", entmedia.CategoryImage},
		{"video/mp4", entmedia.CategoryVideo},
		{"audio/mpeg", entmedia.CategoryAudio},
		{"application/pdf", entmedia.CategoryDocument},
		{"application/octet-stream", entmedia.CategoryDocument},
		{"", entmedia.CategoryDocument},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			if got := categoryFor(tt.mime); got != tt.want {
				t.Errorf("categoryFor(%q) = %v, want %v", tt.mime, got, tt.want)
			}
		})
	}
}
