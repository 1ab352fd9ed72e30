// Package project defines the YAML hand-off format between the editing
// UI and the compositor: the video to preview plus the effect list the
// editor has built. The editing UI itself lives outside this module;
// this file format is its only contract with the preview player.
package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edwinsyarief/zoomframe/timeline"
)

// Project describes one editing session.
type Project struct {
	// Video is the path to the clip being previewed.
	Video string `yaml:"video"`

	// PreviewCap bounds the longer frame dimension of the preview,
	// 0 for the source default.
	PreviewCap int `yaml:"preview_cap,omitempty"`

	// Effects is the ordered effect collection produced by the editor.
	Effects []timeline.Effect `yaml:"effects"`
}

// Load reads and validates a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("parse project %s: %w", path, err)
	}
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("project %s: %w", path, err)
	}
	return &project, nil
}

// Save writes the project back to disk, the way the editor persists a
// session between runs.
func (self *Project) Save(path string) error {
	if err := self.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(self)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write project: %w", err)
	}
	return nil
}

// Validate checks the project fields and the effect collection
// invariants, including the no-overlap rule.
func (self *Project) Validate() error {
	if self.Video == "" {
		return fmt.Errorf("missing video path")
	}
	if self.PreviewCap < 0 {
		return fmt.Errorf("preview_cap must be >= 0, got %d", self.PreviewCap)
	}
	if err := timeline.Validate(self.Effects); err != nil {
		return fmt.Errorf("effects: %w", err)
	}
	return nil
}
