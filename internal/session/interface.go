// Package session provides interfaces and types describing the logged-in user of the story feed.
package session

// Credentials identify the logged-in user towards the remote story API.
type Credentials struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Provider defines a set of methods for types implementing Provider.
type Provider interface {
	Current() (creds Credentials, ok bool)
}

// Persister defines a set of methods for types implementing Persister.
type Persister interface {
	Save(creds Credentials) error
	Load() (creds Credentials, ok bool, err error)
	Clear() error
}
