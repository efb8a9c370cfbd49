package domain

// ToolDependency is a tool declared by a project.
type ToolDependency struct {
	Name  InternedString
	Range VersionRange
	// Framework is zero when the project does not pin the tool framework.
	Framework Framework
	// Err is set when the declaration could not be parsed; Range and Framework are then unset.
	Err error
}

// Project is a parsed project file.
type Project struct {
	Name       string
	Directory  string
	// Frameworks holds the framework keys as written, sorted.
	Frameworks []string
	// Tools is sorted by name.
	Tools []ToolDependency
}

// Tool returns the declared tool whose name matches exactly.
func (p *Project) Tool(name string) (ToolDependency, bool) {
	if p == nil || name == "" {
		return ToolDependency{}, false
	}
	for _, tool := range p.Tools {
		if tool.Name.String() == name {
			return tool, true
		}
	}
	return ToolDependency{}, false
}
