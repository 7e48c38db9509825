package models

import "time"

// TeamMember is a roster entry. Name is the lookup key and is unique.
// PasswordHash and SecurityAnswerHash stay empty until the member creates
// a password for the first time.
type TeamMember struct {
	ID                 string
	Name               string
	Email              string
	Role               string
	PasswordHash       string
	SecurityAnswerHash string
	CreatedAt          time.Time
}

func (m *TeamMember) HasPassword() bool {
	return m.PasswordHash != ""
}

func (m *TeamMember) HasSecurityAnswer() bool {
	return m.SecurityAnswerHash != ""
}
