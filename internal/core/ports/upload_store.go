package ports

import "mime/multipart"

// UploadStore persists uploaded attachments and returns the path under which
// the asset is served back to clients.
type UploadStore interface {
	Save(file *multipart.FileHeader) (string, error)
}
