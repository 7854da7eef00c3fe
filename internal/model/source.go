package model

// Path represents a file system path.
type Path string

// WriteMode selects how patched content replaces the original file.
type WriteMode string

const (
	// WriteAtomic writes to a temporary file and renames it over the original.
	WriteAtomic WriteMode = "atomic"

	// WriteTruncate truncates the original and writes in place. A failure after
	// the open leaves the file empty or partially written.
	WriteTruncate WriteMode = "truncate"
)

// Match records one trigger hit. A line hit by several triggers yields several matches.
type Match struct {
	Line    int    `yaml:"line"` // 1-based
	Rule    string `yaml:"rule"`
	Trigger string `yaml:"trigger"`
}

// FileResult holds the outcome of scanning a single file.
type FileResult struct {
	Path     Path
	Hash     string // SHA-256 of Original
	Original []byte
	Patched  []byte
	Matches  []Match
}

// Changed reports whether patching altered the content.
func (r FileResult) Changed() bool {
	return string(r.Original) != string(r.Patched)
}
