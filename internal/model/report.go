package model

// FileReport is the persisted summary of a patched file.
type FileReport struct {
	Path    Path    `yaml:"path"`
	Hash    string  `yaml:"hash"`
	Changed bool    `yaml:"changed"`
	Written bool    `yaml:"written"`
	Matches []Match `yaml:"matches"`
}

// Report is the persisted summary of a run.
type Report struct {
	Mode   WriteMode    `yaml:"mode"`
	DryRun bool         `yaml:"dry_run"`
	Files  []FileReport `yaml:"files"`
}

// Results converts the report back into per-file results for display. The
// file contents are not persisted, so only path, hash and matches are set.
func (r Report) Results() []FileResult {
	results := make([]FileResult, 0, len(r.Files))
	for _, file := range r.Files {
		results = append(results, FileResult{Path: file.Path, Hash: file.Hash, Matches: file.Matches})
	}

	return results
}
