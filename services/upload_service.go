package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"clickexpress-cms/models"

	"github.com/google/uuid"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// Storage persists an uploaded file under a relative path.
type Storage interface {
	Save(path string, content io.Reader) error
}

type LocalStorage struct {
	Root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{Root: root}
}

func (s *LocalStorage) Save(path string, content io.Reader) error {
	fullPath := filepath.Join(s.Root, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, content)
	return err
}

type UploadService interface {
	UploadImage(fileHeader *multipart.FileHeader, category string) (*models.UploadResult, error)
}

type uploadService struct {
	storage Storage
	baseURL string
}

func NewUploadService(storage Storage, baseURL string) UploadService {
	return &uploadService{
		storage: storage,
		baseURL: baseURL,
	}
}

func (s *uploadService) UploadImage(fileHeader *multipart.FileHeader, category string) (*models.UploadResult, error) {
	mimetype := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[mimetype] {
		fieldErrors := models.FieldErrors{}
		fieldErrors.Add("image", "Invalid file type. Only JPEG, PNG, and GIF files are allowed.")
		return nil, &models.ValidationError{Details: fieldErrors}
	}

	// The stored name never reuses the client-supplied filename, only its
	// extension.
	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("image_%s%s", strings.ReplaceAll(uuid.NewString(), "-", ""), extension)

	var uploadPath string
	switch category {
	case "blog":
		uploadPath = "blog/images/" + filename
	case "gallery":
		uploadPath = "gallery/images/" + filename
	default:
		uploadPath = "uploads/images/" + filename
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, &models.UploadError{Err: err}
	}
	defer file.Close()

	if err := s.storage.Save(uploadPath, file); err != nil {
		return nil, &models.UploadError{Err: err}
	}

	return &models.UploadResult{
		Filename: filename,
		URL:      s.baseURL + "/media/" + uploadPath,
		Size:     fileHeader.Size,
		Mimetype: mimetype,
	}, nil
}
