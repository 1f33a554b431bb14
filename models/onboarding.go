package models

import "time"

// ApplicationStatus is the three-state onboarding approval workflow.
type ApplicationStatus string

const (
	AppStatusPending  ApplicationStatus = "pending"
	AppStatusApproved ApplicationStatus = "approved"
	AppStatusRejected ApplicationStatus = "rejected"
)

// Address is a US mailing address.
type Address struct {
	AddressOne string `bson:"addressOne" json:"addressOne"`
	AddressTwo string `bson:"addressTwo,omitempty" json:"addressTwo,omitempty"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	ZipCode    string `bson:"zipCode" json:"zipCode"`
}

// CitizenshipStatus captures residency and work-authorization details.
type CitizenshipStatus struct {
	IsPermanentResident   bool       `bson:"isPermanentResident" json:"isPermanentResident"`
	Type                  string     `bson:"type" json:"type"` // green_card, citizen, work_authorization
	WorkAuthorizationType string     `bson:"workAuthorizationType,omitempty" json:"workAuthorizationType,omitempty"`
	WorkAuthorizationOther string    `bson:"workAuthorizationOther,omitempty" json:"workAuthorizationOther,omitempty"`
	ExpirationDate        *time.Time `bson:"expirationDate,omitempty" json:"expirationDate,omitempty"`
}

// OnboardingDocument is a supporting file attached to an onboarding
// application (driver license, passport, OPT receipt, ...).
type OnboardingDocument struct {
	Type       string    `bson:"type" json:"type"`
	FileName   string    `bson:"fileName" json:"fileName"`
	FileURL    string    `bson:"fileUrl" json:"fileUrl"`
	UploadDate time.Time `bson:"uploadDate" json:"uploadDate"`
}

// EmergencyContact is a person HR may reach about the employee.
type EmergencyContact struct {
	FirstName    string `bson:"firstName" json:"firstName"`
	LastName     string `bson:"lastName" json:"lastName"`
	MiddleName   string `bson:"middleName,omitempty" json:"middleName,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
	Relationship string `bson:"relationship" json:"relationship"`
}

// OnboardingApplication is one employee's submitted onboarding form plus its
// review status. At most one pending application exists per user.
type OnboardingApplication struct {
	ID                string            `bson:"id" json:"id"`
	UserID            string            `bson:"userId" json:"userId"`
	Status            ApplicationStatus `bson:"status" json:"status"`
	RejectionFeedback string            `bson:"rejectionFeedback,omitempty" json:"rejectionFeedback,omitempty"`

	FirstName      string  `bson:"firstName" json:"firstName"`
	LastName       string  `bson:"lastName" json:"lastName"`
	MiddleName     string  `bson:"middleName,omitempty" json:"middleName,omitempty"`
	PreferredName  string  `bson:"preferredName,omitempty" json:"preferredName,omitempty"`
	ProfilePicture string  `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Address        Address `bson:"address" json:"address"`
	CellPhone      string  `bson:"cellPhone" json:"cellPhone"`
	WorkPhone      string  `bson:"workPhone,omitempty" json:"workPhone,omitempty"`
	Email          string  `bson:"email" json:"email"`
	SSN            string  `bson:"ssn" json:"ssn"`
	DateOfBirth    time.Time `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender         string    `bson:"gender" json:"gender"` // male, female, prefer_not_to_say

	CitizenshipStatus CitizenshipStatus    `bson:"citizenshipStatus" json:"citizenshipStatus"`
	Documents         []OnboardingDocument `bson:"documents" json:"documents"`
	Reference         *EmergencyContact    `bson:"reference,omitempty" json:"reference,omitempty"`
	EmergencyContacts []EmergencyContact   `bson:"emergencyContacts,omitempty" json:"emergencyContacts,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NewestDocumentOfType returns the application's most recently uploaded
// document of the given type (latest uploadDate wins), or nil.
func (a *OnboardingApplication) NewestDocumentOfType(docType string) *OnboardingDocument {
	var newest *OnboardingDocument
	for i := range a.Documents {
		d := &a.Documents[i]
		if d.Type != docType {
			continue
		}
		if newest == nil || d.UploadDate.After(newest.UploadDate) {
			newest = d
		}
	}
	return newest
}

// PersonalInfo is the employee-editable subset of an onboarding application.
// Updates merge field by field; the review status and identity documents are
// never touched through this path.
type PersonalInfo struct {
	FirstName      string               `json:"firstName,omitempty"`
	LastName       string               `json:"lastName,omitempty"`
	MiddleName     string               `json:"middleName,omitempty"`
	PreferredName  string               `json:"preferredName,omitempty"`
	ProfilePicture string               `json:"profilePicture,omitempty"`
	Email          string               `json:"email,omitempty"`
	SSN            string               `json:"ssn,omitempty"`
	DateOfBirth    *time.Time           `json:"dateOfBirth,omitempty"`
	Gender         string               `json:"gender,omitempty"`
	Address        *Address             `json:"address,omitempty"`
	CellPhone      string               `json:"cellPhone,omitempty"`
	WorkPhone      string               `json:"workPhone,omitempty"`
	Documents      []OnboardingDocument `json:"documents,omitempty"`
}
