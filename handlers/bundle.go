package handlers

import (
	userRepoPkg "staffstream/database/repository/user"
)

// HandlerBundle aggregates the route handlers plus the dependencies the
// route layer needs to build middleware.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth       *AuthHandler
	Onboarding *OnboardingHandler
	HR         *HRHandler
	Visa       *VisaHandler
	Storage    *StorageHandler
}
