package apperrors

import (
	"net/http"
)

// ErrDatabase wraps a relational store failure.
func ErrDatabase(err error, domain string) *AppError {
	return Wrap(err, CodeDatabaseError, domain, "Database error", http.StatusInternalServerError)
}

// ErrDocumentStore wraps a document store failure.
func ErrDocumentStore(err error, domain string) *AppError {
	return Wrap(err, CodeDocumentStoreError, domain, "Document store error", http.StatusInternalServerError)
}

// --- Notices ---

var ErrNoticeNotFound = New(CodeNotFound, "notice", "Notice not found", http.StatusNotFound)

// --- Applicants & Inquiries ---

var ErrApplicantNotFound = New(CodeNotFound, "applicant", "Applicant not found", http.StatusNotFound)

var ErrInquiryNotFound = New(CodeNotFound, "inquiry", "Inquiry not found", http.StatusNotFound)

// --- Images ---

var ErrImageNotFound = New(CodeNotFound, "image", "Image not found", http.StatusNotFound)
