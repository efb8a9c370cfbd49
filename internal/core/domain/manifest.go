package domain

// RuntimeManifest is the dependency manifest the host launcher reads before starting a tool.
// Field order follows the on-disk format.
type RuntimeManifest struct {
	RuntimeTarget      RuntimeTarget                               `json:"runtimeTarget"`
	CompilationOptions map[string]any                              `json:"compilationOptions"`
	Targets            map[string]map[string]RuntimeManifestTarget `json:"targets"`
	Libraries          map[string]RuntimeManifestLibrary           `json:"libraries"`
}

// RuntimeTarget names the framework the manifest was generated for.
type RuntimeTarget struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
}

// RuntimeManifestTarget lists the dependencies and runtime assets of a single library.
type RuntimeManifestTarget struct {
	Dependencies map[string]string   `json:"dependencies,omitempty"`
	Runtime      map[string]struct{} `json:"runtime,omitempty"`
}

// RuntimeManifestLibrary describes how a library was installed.
type RuntimeManifestLibrary struct {
	Type        string `json:"type"`
	Serviceable bool   `json:"serviceable"`
	Sha512      string `json:"sha512"`
	Path        string `json:"path,omitempty"`
}
