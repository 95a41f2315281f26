package session

import (
	"time"

	"roamify/models"
)

// State is the resolution state the route guard switches on. While a
// persisted session is still being validated the state is Loading and no
// guarded content may be served.
type State int

const (
	StateLoading State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Session is the client-side record of the signed-in user: the bearer token
// issued by the backend plus the serialized user record. It is created on
// login, restored from the store on every request, and destroyed on logout
// or on any 401 from the backend.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
}
