package model

// User is an account holder. Emails are unique case-insensitively;
// PasswordHash is produced by an Encrypter, the model never inspects
// its format.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Image        string `json:"image,omitempty"`
}
