package models

import (
	"encoding/base64"
	"time"
)

// ResumeImage is the document-store representation of an uploaded resume
// image. The payload is kept base64-encoded.
type ResumeImage struct {
	ID          string    `bson:"-" json:"id"`
	Filename    string    `bson:"filename" json:"filename"`
	ContentType string    `bson:"contentType" json:"contentType"`
	ImageBase64 string    `bson:"imageBase64" json:"imageBase64"`
	UploadDate  time.Time `bson:"uploadDate" json:"uploadDate"`
}

// NewResumeImage encodes data and stamps the upload date.
func NewResumeImage(filename, contentType string, data []byte) *ResumeImage {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &ResumeImage{
		Filename:    filename,
		ContentType: contentType,
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		UploadDate:  time.Now().UTC(),
	}
}

// Bytes decodes the stored payload.
func (i *ResumeImage) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(i.ImageBase64)
}
