package auth

// Authorizer is the administrative capability injected into the workflow,
// registry, and settlement services. Keeping it behind an interface isolates
// privileged flows from normal actor flows and lets tests substitute a mock
// administrator.
//
//go:generate mockgen -source=authorizer.go -destination=../mocks/authorizer.go -package=mocks -mock_names=Authorizer=MockAuthorizer
type Authorizer interface {
	// IsAdministrator reports whether identity holds the administrative capability
	IsAdministrator(identity string) bool
}

// staticAuthorizer grants the administrative capability to a fixed identity set
type staticAuthorizer struct {
	admins map[string]bool
}

// NewStaticAuthorizer creates an Authorizer from a configured list of admin identities
func NewStaticAuthorizer(admins []string) Authorizer {
	set := make(map[string]bool, len(admins))
	for _, identity := range admins {
		if identity != "" {
			set[identity] = true
		}
	}
	return &staticAuthorizer{admins: set}
}

// IsAdministrator reports whether identity is in the configured admin set
func (a *staticAuthorizer) IsAdministrator(identity string) bool {
	return a.admins[identity]
}
