package handler

import (
	"io"
	"mime/multipart"
)

// readMultipartFile reads an uploaded file fully into memory. Uploads are
// size-capped by Fiber's body limit before they reach here.
func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
