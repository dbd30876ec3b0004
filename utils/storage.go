package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	storage "github.com/supabase-community/storage-go"
)

const storageBucket = "kulup-uploads"

// UploadToStorage bir dosyayı site bucket'ına yükler ve public URL döner.
// file *multipart.FileHeader (admin panel yüklemeleri) veya []byte olabilir.
func UploadToStorage(file interface{}, filename string, fileID string, folder string, contentType string) (string, error) {
	storageURL := os.Getenv("STORAGE_URL")
	storageKey := os.Getenv("STORAGE_KEY")

	client := storage.NewClient(storageURL+"/storage/v1", storageKey, nil)

	var reader io.Reader
	var ext string

	if fh, ok := file.(*multipart.FileHeader); ok {
		f, err := fh.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		reader = f
		ext = filepath.Ext(fh.Filename)
		if contentType == "" {
			contentType = fh.Header.Get("Content-Type")
		}
		if _, err := f.Seek(0, 0); err != nil {
			return "", err
		}
	}

	if data, ok := file.([]byte); ok {
		reader = bytes.NewReader(data)
		ext = filepath.Ext(filename)
	}

	objectPath := fmt.Sprintf("%s%s", fileID, ext)
	if folder != "" {
		objectPath = fmt.Sprintf("%s/%s%s", folder, fileID, ext)
	}

	upsert := true
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}

	if _, err := client.UploadFile(storageBucket, objectPath, reader, options); err != nil {
		return "", err
	}

	publicURL := client.GetPublicUrl(storageBucket, objectPath)
	return publicURL.SignedURL, nil
}
