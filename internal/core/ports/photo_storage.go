package ports

import "mime/multipart"

// PhotoStorage stores uploaded parcel photos opaquely and returns a
// retrievable URL. Implementations exist for local disk and S3.
type PhotoStorage interface {
	// Store saves the uploaded file under the given relative path and
	// returns the URL at which the photo can later be fetched.
	Store(file *multipart.FileHeader, path string) (string, error)
}
