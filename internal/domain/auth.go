package domain

// AuthContext is the current session as owned by the external auth store.
// A nil pointer or an empty token means no session: every authenticated
// operation must fail before touching the network.
type AuthContext struct {
	UserID int
	Token  string
}

func (a *AuthContext) Valid() bool {
	return a != nil && a.Token != "" && a.UserID != 0
}
