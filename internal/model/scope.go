package model

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the request-scoped user identity.
// It is built by the delivery layer and passed through every use case call.
type Scope struct {
	UserID   string
	Username string
	Language string
}
