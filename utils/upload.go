package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

const thumbWidth = 400

// SaveFile writes an uploaded file under dir with a unique name and, for
// images, drops a 400px-wide thumbnail next to it as <name>_thumb<ext>.
// Returns the saved filename (not the full path).
func SaveFile(file multipart.File, header *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(header.Filename))
	path := filepath.Join(dir, filename)

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}

	if isImage(filename) {
		if err := writeThumbnail(path); err != nil {
			// Thumbnail failure is non-fatal; the original upload stands.
			fmt.Println("thumbnail generation failed:", err)
		}
	}

	return filename, nil
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

func writeThumbnail(path string) error {
	img, err := imaging.Open(path)
	if err != nil {
		return err
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)

	ext := filepath.Ext(path)
	thumbPath := strings.TrimSuffix(path, ext) + "_thumb" + ext
	return imaging.Save(thumb, thumbPath)
}
