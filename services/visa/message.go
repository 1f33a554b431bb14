package visa

import "staffstream/models"

// PendingMessage is shown while a step's document awaits HR review.
func PendingMessage(step models.DocumentType) string {
	switch step {
	case models.DocTypeOPTReceipt:
		return "Waiting for HR to approve your OPT Receipt"
	case models.DocTypeOPTEAD:
		return "Waiting for HR to approve your OPT EAD"
	case models.DocTypeI983:
		return "Waiting for HR to approve and sign your I-983"
	case models.DocTypeI20:
		return "Waiting for HR to approve your I-20"
	default:
		return ""
	}
}

// NextStepMessage prompts the employee to upload the document for a step.
func NextStepMessage(step models.DocumentType) string {
	switch step {
	case models.DocTypeOPTReceipt:
		return "Please upload a copy of your OPT RECEIPT"
	case models.DocTypeOPTEAD:
		return "Please upload a copy of your OPT EAD"
	case models.DocTypeI983:
		return "Please upload a copy of the signed I-983"
	case models.DocTypeI20:
		return "Please upload a copy of your I-20"
	default:
		return ""
	}
}

// StatusMessage derives the employee-facing message from the application
// state. It is a pure function of currentStep and the latest document.
func StatusMessage(v *models.VisaApplication) string {
	doc := v.LastDocument()
	if doc == nil {
		return NextStepMessage(v.CurrentStep)
	}
	switch doc.Status {
	case models.DocStatusPending:
		return PendingMessage(v.CurrentStep)
	case models.DocStatusApproved:
		if doc.Type == models.DocTypeI20 {
			return "All documents have been approved."
		}
		return NextStepMessage(v.CurrentStep)
	case models.DocStatusRejected:
		return doc.Feedback
	default:
		return ""
	}
}

// InProgress classifies an application for the HR dashboard. An application
// is done only when it sits at I-20 with an approved I-20 as its latest
// document; everything else is still in progress.
func InProgress(v *models.VisaApplication) bool {
	if v.CurrentStep != models.DocTypeI20 {
		return true
	}
	doc := v.LastDocument()
	if doc == nil {
		return true
	}
	if doc.Type != models.DocTypeI20 {
		return true
	}
	return doc.Status != models.DocStatusApproved
}
