package onboarding

import (
	"staffstream/models"
	"staffstream/utils"
)

// GetPersonalInfo returns the employee-editable subset of the application.
func (s *DefaultOnboardingService) GetPersonalInfo(userID string) (*models.PersonalInfo, error) {
	app, err := s.GetApplication(userID)
	if err != nil {
		return nil, err
	}

	dob := app.DateOfBirth
	addr := app.Address
	return &models.PersonalInfo{
		FirstName:      app.FirstName,
		LastName:       app.LastName,
		MiddleName:     app.MiddleName,
		PreferredName:  app.PreferredName,
		ProfilePicture: app.ProfilePicture,
		Email:          app.Email,
		SSN:            app.SSN,
		DateOfBirth:    &dob,
		Gender:         app.Gender,
		Address:        &addr,
		CellPhone:      app.CellPhone,
		WorkPhone:      app.WorkPhone,
		Documents:      app.Documents,
	}, nil
}

// UpdatePersonalInfo merges non-empty fields into the application. The set
// of mutable fields is fixed by the PersonalInfo type; review status,
// citizenship details, and identity documents cannot be reached here.
func (s *DefaultOnboardingService) UpdatePersonalInfo(userID string, info models.PersonalInfo) (*models.OnboardingApplication, error) {
	app, err := s.GetApplication(userID)
	if err != nil {
		return nil, err
	}

	mergePersonalInfo(app, info)

	if err := s.Repo.Replace(app); err != nil {
		return nil, utils.UpstreamError("Failed to update personal information", err)
	}
	return app, nil
}

// mergePersonalInfo copies set fields from info onto the application.
func mergePersonalInfo(app *models.OnboardingApplication, info models.PersonalInfo) {
	if info.FirstName != "" {
		app.FirstName = info.FirstName
	}
	if info.LastName != "" {
		app.LastName = info.LastName
	}
	if info.MiddleName != "" {
		app.MiddleName = info.MiddleName
	}
	if info.PreferredName != "" {
		app.PreferredName = info.PreferredName
	}
	if info.ProfilePicture != "" {
		app.ProfilePicture = info.ProfilePicture
	}
	if info.Email != "" {
		app.Email = info.Email
	}
	if info.SSN != "" {
		app.SSN = info.SSN
	}
	if info.DateOfBirth != nil {
		app.DateOfBirth = *info.DateOfBirth
	}
	if info.Gender != "" {
		app.Gender = info.Gender
	}
	if info.Address != nil {
		app.Address = *info.Address
	}
	if info.CellPhone != "" {
		app.CellPhone = info.CellPhone
	}
	if info.WorkPhone != "" {
		app.WorkPhone = info.WorkPhone
	}
}
