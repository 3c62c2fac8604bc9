package models

import "mime/multipart"

// Upload is an image received in a multipart form field.
type Upload struct {
	// FieldName is the form field the file was sent in (e.g. "image").
	FieldName string

	// Header describes the uploaded file and opens its content.
	Header *multipart.FileHeader
}
