package store

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// StorageClient holds project logo images in a Supabase storage bucket.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, key, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", key, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadLogo stores a project's logo and returns its public URL. Re-uploads
// overwrite the previous logo for the same project.
func (s *StorageClient) UploadLogo(wallet string, projectID uuid.UUID, filename, contentType string, data []byte) (string, error) {
	ext := path.Ext(filename)
	if ext == "" {
		ext = ".png"
	}
	storagePath := fmt.Sprintf("wallets/%s/projects/%s/logo%s", wallet, projectID.String(), ext)

	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	return s.PublicURL(storagePath), nil
}

func (s *StorageClient) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DeleteLogo(wallet string, projectID uuid.UUID) error {
	prefix := fmt.Sprintf("wallets/%s/projects/%s/", wallet, projectID.String())

	files, err := s.client.ListFiles(s.bucket, prefix, storage.FileSearchOptions{
		Limit: 100,
	})
	if err != nil {
		return fmt.Errorf("failed to list logo files: %w", err)
	}

	if len(files) > 0 {
		paths := make([]string, len(files))
		for i, f := range files {
			paths[i] = f.Name
		}
		if _, err := s.client.RemoveFile(s.bucket, paths); err != nil {
			return fmt.Errorf("failed to delete logo files: %w", err)
		}
	}

	return nil
}
