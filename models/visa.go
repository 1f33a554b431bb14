package models

import "time"

// DocumentType is one of the four ordered visa document steps.
type DocumentType string

const (
	DocTypeOPTReceipt DocumentType = "OPT_RECEIPT"
	DocTypeOPTEAD     DocumentType = "OPT_EAD"
	DocTypeI983       DocumentType = "I_983"
	DocTypeI20        DocumentType = "I_20"
)

// DocumentStatus is the review state of a single uploaded document.
type DocumentStatus string

const (
	DocStatusPending  DocumentStatus = "PENDING"
	DocStatusApproved DocumentStatus = "APPROVED"
	DocStatusRejected DocumentStatus = "REJECTED"
)

// VisaDocument is one uploaded file within a visa application. Records are
// append-only: a rejected document is kept for history and a resubmission
// becomes a new record.
type VisaDocument struct {
	Type       DocumentType   `bson:"type" json:"type"`
	FileURL    string         `bson:"fileUrl" json:"fileUrl"`
	Status     DocumentStatus `bson:"status" json:"status"`
	Feedback   string         `bson:"feedback" json:"feedback"`
	UploadedAt time.Time      `bson:"uploadedAt" json:"uploadedAt"`
	ReviewedAt *time.Time     `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
}

// VisaApplication tracks one employee's staged work-authorization paperwork.
// CurrentStep only moves forward, and only when the document at the current
// step is approved.
type VisaApplication struct {
	ID          string         `bson:"id" json:"id"`
	UserID      string         `bson:"userId" json:"userId"`
	CurrentStep DocumentType   `bson:"currentStep" json:"currentStep"`
	Documents   []VisaDocument `bson:"documents" json:"documents"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// LastDocument returns the most recently uploaded document, or nil if none
// exists. HR review always acts on this record.
func (v *VisaApplication) LastDocument() *VisaDocument {
	if len(v.Documents) == 0 {
		return nil
	}
	return &v.Documents[len(v.Documents)-1]
}

// VisaStatusView is the employee-facing projection of a visa application.
type VisaStatusView struct {
	CurrentStep DocumentType   `json:"currentStep"`
	Documents   []VisaDocument `json:"documents"`
	Message     string         `json:"message"`
}

// VisaApplicationView decorates an application with owner identity for the
// HR dashboards.
type VisaApplicationView struct {
	VisaApplication
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
}
