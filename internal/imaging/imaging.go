// Package imaging loads staged product photos for model input.
package imaging

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Image is one photo ready to attach to a model request.
type Image struct {
	MIME string
	Data []byte
}

var extMIME = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

// Load reads an image file from disk and determines its MIME type.
// The caller owns the file; Load never deletes or moves it.
func Load(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("read image %s: %w", path, err)
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("image %s is empty", path)
	}
	return Image{MIME: DetectMIME(path, data), Data: data}, nil
}

// DetectMIME picks a MIME type by magic bytes, then content sniffing,
// then the file extension.
func DetectMIME(path string, data []byte) string {
	// JPEG: FF D8
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8 {
		return "image/jpeg"
	}
	// PNG signature
	if len(data) >= 8 &&
		data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 &&
		data[4] == 0x0D && data[5] == 0x0A && data[6] == 0x1A && data[7] == 0x0A {
		return "image/png"
	}
	if len(data) > 0 {
		if m := http.DetectContentType(data); m != "application/octet-stream" {
			return m
		}
	}
	if m, ok := extMIME[strings.ToLower(filepath.Ext(path))]; ok {
		return m
	}
	return "image/jpeg"
}
