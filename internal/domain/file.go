package domain

import "context"

// FileRepository abstracts blob storage for uploaded media (meal photos).
type FileRepository interface {
	// Upload stores the file and returns its public URL.
	Upload(ctx context.Context, file []byte, filename string, contentType string) (string, error)
}
