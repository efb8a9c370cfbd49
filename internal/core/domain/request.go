package domain

// ResolutionRequest asks for the command that runs CommandName.
// Empty strings mean the value is absent.
type ResolutionRequest struct {
	CommandName      string
	CommandArguments []string
	ProjectDirectory string
}

// Arguments returns the command arguments, never nil.
func (r ResolutionRequest) Arguments() []string {
	if r.CommandArguments == nil {
		return []string{}
	}
	return r.CommandArguments
}

// CommandSpec is a fully resolved invocation: an executable and its escaped argument string.
type CommandSpec struct {
	Path string `json:"path"`
	Args string `json:"args"`
}
