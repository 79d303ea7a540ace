package models

// NoImage is stored in applicants.resume_file when the submission carried no
// resume image, or when the image could not be written to the document store.
const NoImage = "No Image"

// NoticeDateLayout is the date format used by the recent-notices listing.
const NoticeDateLayout = "2006-01-02"
