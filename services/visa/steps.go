package visa

import "staffstream/models"

// stepOrder is the fixed document sequence an F1 employee works through.
var stepOrder = []models.DocumentType{
	models.DocTypeOPTReceipt,
	models.DocTypeOPTEAD,
	models.DocTypeI983,
	models.DocTypeI20,
}

// NextStep returns the step following the given one, or "" when the step is
// I-20 (terminal) or unknown.
func NextStep(step models.DocumentType) models.DocumentType {
	for i, s := range stepOrder {
		if s == step && i+1 < len(stepOrder) {
			return stepOrder[i+1]
		}
	}
	return ""
}

// StepIndex returns the position of a step in the fixed order, or -1.
func StepIndex(step models.DocumentType) int {
	for i, s := range stepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// IsValidStep reports whether the value is one of the four document types.
func IsValidStep(step models.DocumentType) bool {
	return StepIndex(step) >= 0
}
