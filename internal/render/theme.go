package render

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Theme is an optional YAML-driven override of the template set. Only the
// fields present in the file are applied; everything else keeps its stock
// value.
type Theme struct {
	Indent     *string `yaml:"indent,omitempty"`
	Blockquote *string `yaml:"blockquote,omitempty"`
	LinePrefix *string `yaml:"linePrefix,omitempty"`

	Fills struct {
		H1 string `yaml:"h1,omitempty"`
		H2 string `yaml:"h2,omitempty"`
	} `yaml:"fills"`

	Badges struct {
		Success string `yaml:"success,omitempty"`
		Failure string `yaml:"failure,omitempty"`
		Skip    string `yaml:"skip,omitempty"`
	} `yaml:"badges"`

	Colors struct {
		Heading string `yaml:"heading,omitempty"`
		Prompt  string `yaml:"prompt,omitempty"`
		Stdout  string `yaml:"stdout,omitempty"`
		Stderr  string `yaml:"stderr,omitempty"`
	} `yaml:"colors"`
}

// LoadTheme reads and decodes a theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	if err := theme.validate(); err != nil {
		return nil, fmt.Errorf("invalid theme file %s: %w", path, err)
	}
	return &theme, nil
}

func (th *Theme) validate() error {
	for _, name := range []string{th.Colors.Heading, th.Colors.Prompt, th.Colors.Stdout, th.Colors.Stderr} {
		if name == "" {
			continue
		}
		if _, ok := colorTable[name]; !ok {
			return fmt.Errorf("unknown color name %q", name)
		}
	}
	if utf8.RuneCountInString(th.Fills.H1) > 1 || utf8.RuneCountInString(th.Fills.H2) > 1 {
		return fmt.Errorf("fill must be a single character")
	}
	return nil
}

func (th *Theme) apply(cfg *Config, t *Templates) {
	width := stockRuleWidth
	if cfg.MarginOverrides && cfg.Margin > 0 {
		width = cfg.Margin
	}
	if th.Indent != nil {
		t.Indent = *th.Indent
	}
	if th.Blockquote != nil {
		t.Blockquote = *th.Blockquote
	}
	if th.LinePrefix != nil {
		t.LinePrefix = *th.LinePrefix
	}
	if th.Fills.H1 != "" {
		t.H1Rule = strings.Repeat(th.Fills.H1, width)
	}
	if th.Fills.H2 != "" {
		t.H2Rule = strings.Repeat(th.Fills.H2, width)
		t.Divider = t.H2Rule
		t.ClosingRule = t.H2Rule
	}
	if th.Badges.Success != "" {
		t.SuccessBadge = th.Badges.Success
	}
	if th.Badges.Failure != "" {
		t.FailureBadge = th.Badges.Failure
	}
	if th.Badges.Skip != "" {
		t.SkipBadge = th.Badges.Skip
	}
	if th.Colors.Heading != "" {
		t.HeadingColor = th.Colors.Heading
	}
	if th.Colors.Prompt != "" {
		cfg.PromptColor = th.Colors.Prompt
	}
	if th.Colors.Stdout != "" {
		cfg.StdoutColor = th.Colors.Stdout
	}
	if th.Colors.Stderr != "" {
		cfg.StderrColor = th.Colors.Stderr
	}
}
