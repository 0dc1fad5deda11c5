package model

import "context"

// CredentialStore looks up the credential pair stored with a poll.
type CredentialStore interface {
	GetCredentials(ctx context.Context, login string) (Credentials, error)
}

// PollStore defines persistence operations for polls.
type PollStore interface {
	CredentialStore
	Create(ctx context.Context, poll Poll) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Poll, error)
	GetByID(ctx context.Context, id int64) (Poll, error)
	Clear(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// Poll is a single survey entry together with its login credential.
// PasswordDigest is only populated on the write path.
type Poll struct {
	ID             int64
	FirstName      string
	LastName       string
	Age            int
	City           string
	Interests      *string
	Login          string
	PasswordDigest []byte
}

// Credentials is the stored login and password digest of a poll.
type Credentials struct {
	Login          string
	PasswordDigest []byte
}

// RegisterPollParams contains parameters to register a poll.
type RegisterPollParams struct {
	FirstName string
	LastName  string
	Age       int
	City      string
	Interests *string
	Login     string
	Password  string
}
