package models

// SessionUser is the identity record sealed into the session cookie.
// The cookie is the sole source of truth for who is calling; the
// database is never consulted to re-derive it per request.
type SessionUser struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Picture    *string `json:"picture"`
	IsLoggedIn bool    `json:"isLoggedIn"`
}

// EmptySession is returned whenever the cookie is absent, malformed or
// fails verification.
var EmptySession = SessionUser{}

func SessionFromUser(user User) SessionUser {
	return SessionUser{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Picture:    user.Picture,
		IsLoggedIn: true,
	}
}
