package domain

// Commit represents a single git commit as reported by a Source.
type Commit struct {
	Hash        string // Full-length object ID
	Message     string // Subject line only
	AuthorName  string
	AuthorEmail string
	Date        string // Git-native author date string
}

// Project represents one configured repository checkout together with the
// commits collected for it. Commits are in log order, newest first.
type Project struct {
	Name    string
	Remote  string // Base URL for commit links; empty when resolution failed
	Commits []Commit
}

// Entries holds the classified, formatted changelog lines for one project.
type Entries struct {
	Features []string
	Bugfixes []string
}

// ProjectSection pairs a project name with its classified entries, ready to
// be rendered into the final document.
type ProjectSection struct {
	Name    string
	Entries Entries
}
