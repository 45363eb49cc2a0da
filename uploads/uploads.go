package uploads

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"keliva/utils"

	"github.com/disintegration/imaging"
)

const uploadDir = "static/uploads"

// SaveImage stores one uploaded image and a 300px-wide thumbnail,
// returning their public paths.
func SaveImage(file *multipart.FileHeader) (string, string, error) {
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %w", err)
	}

	uniqueID := utils.GetUUID()
	fileName := uniqueID + ".jpg"
	originalPath := filepath.Join(uploadDir, fileName)
	thumbDir := filepath.Join(uploadDir, "thumb")
	thumbnailPath := filepath.Join(thumbDir, fileName)

	if err := utils.EnsureDir(uploadDir); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := utils.EnsureDir(thumbDir); err != nil {
		return "", "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, originalPath); err != nil {
		return "", "", fmt.Errorf("failed to save original image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return "", "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/static/uploads/" + fileName, "/static/uploads/thumb/" + fileName, nil
}
