package domain

// ToolIdentity pins a tool to the version and framework it was restored for.
type ToolIdentity struct {
	Name      InternedString
	Version   Version
	Framework Framework
}

// ToolAssets holds the restore artifacts of a single tool.
type ToolAssets struct {
	Graph        *LockFile
	PackagesRoot string
	LockFilePath string
	ManifestPath string
}
