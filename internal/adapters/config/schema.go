package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ProjectFile represents the structure of project.json and project.yaml.
type ProjectFile struct {
	Name       string                 `json:"name" yaml:"name"`
	Frameworks map[string]any         `json:"frameworks" yaml:"frameworks"`
	Tools      map[string]ToolSpecDTO `json:"tools" yaml:"tools"`
}

// ToolSpecDTO is a tool declaration. It is written either as a bare version range
// ("1.0.0") or as an object with a version and an optional framework.
type ToolSpecDTO struct {
	Version   string `json:"version" yaml:"version"`
	Framework string `json:"framework" yaml:"framework"`
}

type toolSpecObject ToolSpecDTO

// UnmarshalJSON accepts both the string and the object form.
func (t *ToolSpecDTO) UnmarshalJSON(data []byte) error {
	var version string
	if err := json.Unmarshal(data, &version); err == nil {
		*t = ToolSpecDTO{Version: version}
		return nil
	}

	var obj toolSpecObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*t = ToolSpecDTO(obj)
	return nil
}

// UnmarshalYAML accepts both the string and the mapping form.
func (t *ToolSpecDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = ToolSpecDTO{Version: node.Value}
		return nil
	}

	var obj toolSpecObject
	if err := node.Decode(&obj); err != nil {
		return err
	}
	*t = ToolSpecDTO(obj)
	return nil
}
