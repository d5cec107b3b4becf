package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/retrolabs/retrolog/domain"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// CommitBuilder helps create test commits with a fluent interface.
type CommitBuilder struct {
	*testkit.BaseBuilder
	hash        string
	message     string
	authorName  string
	authorEmail string
	date        string
}

// NewCommitBuilder creates a new commit builder with sensible defaults.
func NewCommitBuilder() *CommitBuilder {
	return &CommitBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		hash:        "abcdef1234567890abcdef1234567890abcdef12",
		message:     "feat: add something",
		authorName:  "Ada Lovelace",
		authorEmail: "ada@example.com",
		date:        "Mon Jan 5 10:00:00 2026 +0000",
	}
}

// WithHash sets the commit hash.
func (b *CommitBuilder) WithHash(hash string) *CommitBuilder {
	b.hash = hash
	return b
}

// WithMessage sets the subject line.
func (b *CommitBuilder) WithMessage(message string) *CommitBuilder {
	b.message = message
	return b
}

// WithAuthorName sets the author name.
func (b *CommitBuilder) WithAuthorName(name string) *CommitBuilder {
	b.authorName = name
	return b
}

// WithAuthorEmail sets the author email.
func (b *CommitBuilder) WithAuthorEmail(email string) *CommitBuilder {
	b.authorEmail = email
	return b
}

// WithDate sets the author date string.
func (b *CommitBuilder) WithDate(date string) *CommitBuilder {
	b.date = date
	return b
}

// Build creates the commit (satisfies testkit.Builder interface).
func (b *CommitBuilder) Build() interface{} {
	return b.BuildCommit()
}

// BuildCommit creates the commit with a concrete return type.
func (b *CommitBuilder) BuildCommit() domain.Commit {
	return domain.Commit{
		Hash:        b.hash,
		Message:     b.message,
		AuthorName:  b.authorName,
		AuthorEmail: b.authorEmail,
		Date:        b.date,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CommitBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.hash = "abcdef1234567890abcdef1234567890abcdef12"
	b.message = "feat: add something"
	b.authorName = "Ada Lovelace"
	b.authorEmail = "ada@example.com"
	b.date = "Mon Jan 5 10:00:00 2026 +0000"
	return b
}

// Clone creates a deep copy of the CommitBuilder.
func (b *CommitBuilder) Clone() testkit.Builder {
	return &CommitBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		hash:        b.hash,
		message:     b.message,
		authorName:  b.authorName,
		authorEmail: b.authorEmail,
		date:        b.date,
	}
}
