package models

import "time"

// Document holds the stored metadata of one uploaded verification file.
type Document struct {
	ID       string `bson:"id" json:"id"`
	Filename string `bson:"filename" json:"filename"`
	PublicID string `bson:"public_id" json:"-"` // storage identifier, not exposed
	Size     int64  `bson:"size" json:"size"`
	MimeType string `bson:"mime_type" json:"mime_type"`
}

// Verification statuses.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
)

// MentorVerification is a mentor's credential submission: three uploaded
// documents plus supporting details, reviewed by an admin.
type MentorVerification struct {
	ID               string    `bson:"id" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	GovernmentID     Document  `bson:"government_id" json:"government_id"`
	DegreeCert       Document  `bson:"degree_certificate" json:"degree_certificate"`
	AdditionalFile   Document  `bson:"additional_file" json:"additional_file"`
	WorkEmail        string    `bson:"work_email" json:"work_email"`
	LinkedinProfile  string    `bson:"linkedin_profile" json:"linkedin_profile"`
	AdditionalInfo   string    `bson:"additional_info" json:"additional_info"`
	GovernmentIDType string    `bson:"government_id_type" json:"government_id_type"`
	Status           string    `bson:"status" json:"status"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}
