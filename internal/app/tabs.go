package app

import (
	"fmt"
	"os"

	"github.com/leg100/swipetabs/internal/strip"
	"gopkg.in/yaml.v3"
)

// defaultTabs are shown when no tabs are configured.
var defaultTabs = []tabSpec{
	{Label: "home", Icon: "⌂"},
	{Label: "inbox"},
	{Label: "starred", Icon: "★"},
	{Label: "sent"},
	{Label: "drafts"},
	{Label: "archive"},
	{Label: "spam"},
	{Label: "trash"},
	{Label: "settings"},
}

// tabSpec is a tab as listed in a tabs file.
type tabSpec struct {
	Label  string `yaml:"label"`
	Icon   string `yaml:"icon"`
	Custom string `yaml:"custom"`
}

func loadTabsFile(path string) ([]tabSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tabs file: %w", err)
	}
	var specs []tabSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parsing tabs file %s: %w", path, err)
	}
	return specs, nil
}

// newStrip constructs a strip from the tabs given on the command line followed
// by those listed in the tabs file, falling back to the default tabs if there
// are none.
func newStrip(cfg config) (*strip.Strip, error) {
	specs := make([]tabSpec, len(cfg.Tabs))
	for i, label := range cfg.Tabs {
		specs[i] = tabSpec{Label: label}
	}
	if cfg.TabsFile != "" {
		fromFile, err := loadTabsFile(cfg.TabsFile)
		if err != nil {
			return nil, err
		}
		specs = append(specs, fromFile...)
	}
	if len(specs) == 0 {
		specs = defaultTabs
	}

	s := strip.New()
	for i, spec := range specs {
		if spec.Label == "" && spec.Custom == "" {
			return nil, fmt.Errorf("tab %d has neither a label nor custom content: %w", i, strip.ErrInvalidArgument)
		}
		tab := s.NewTab()
		tab.Label = spec.Label
		tab.Icon = spec.Icon
		tab.Custom = spec.Custom
		if err := s.Add(tab); err != nil {
			return nil, err
		}
	}
	return s, nil
}
