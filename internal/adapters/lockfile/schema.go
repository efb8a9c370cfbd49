package lockfile

// lockFileDTO is the on-disk shape of project.lock.json.
type lockFileDTO struct {
	Version   int                                  `json:"version"`
	Targets   map[string]map[string]targetEntryDTO `json:"targets"`
	Libraries map[string]libraryDTO                `json:"libraries"`
}

// targetEntryDTO is a library as selected for one target.
type targetEntryDTO struct {
	Type         string                    `json:"type"`
	Dependencies map[string]string         `json:"dependencies"`
	Runtime      map[string]map[string]any `json:"runtime"`
}

// libraryDTO is an entry of the library table.
type libraryDTO struct {
	Type   string   `json:"type"`
	Sha512 string   `json:"sha512"`
	Path   string   `json:"path"`
	Files  []string `json:"files"`
}
