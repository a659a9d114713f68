package models

import "time"

// Session is the client-held evidence that a user has authenticated with
// the remote service. The token is opaque; the client never inspects or
// validates it.
type Session struct {
	Token  string
	UserID string
}

// Authenticated reports whether the session carries both credentials.
// Any other combination of presence is treated as signed out.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != ""
}

// Profile is a locally cached, non-authoritative display copy of user
// attributes. It may silently diverge from server truth.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	JoinDate  string `json:"joinDate"`
}

// PlaceholderProfile returns the display fallback used when no profile data
// is available, matching the web front-end's defaults.
func PlaceholderProfile() Profile {
	return Profile{
		FirstName: "User",
		LastName:  "",
		Email:     "user@example.com",
		JoinDate:  time.Now().Format("2006-01-02"),
	}
}

// FullName joins first and last name, tolerating either being empty.
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Initials returns up to two uppercase initials for avatar-style display.
func (p Profile) Initials() string {
	var out []rune
	if p.FirstName != "" {
		out = append(out, []rune(p.FirstName)[0])
	}
	if p.LastName != "" {
		out = append(out, []rune(p.LastName)[0])
	}
	if len(out) == 0 {
		return "?"
	}
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 32
		}
	}
	return string(out)
}
