package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rubylint/rubylint/internal/lint"
	"github.com/rubylint/rubylint/internal/rule"
)

// globalKey is the reserved top-level section for run-wide settings.
const globalKey = "AllRules"

// Config is the parsed configuration document. Top-level keys are rule
// identifiers mapping to per-rule settings, plus the reserved AllRules
// section. Absence of an entry means "no override", never "disabled".
type Config struct {
	Rules  map[string]RuleCfg
	Global GlobalCfg
}

// RuleCfg carries the per-rule overrides a config file may set.
type RuleCfg struct {
	Enabled  *bool  `yaml:"Enabled"`
	Severity string `yaml:"Severity"`
}

// GlobalCfg is the AllRules section.
type GlobalCfg struct {
	Exclude       []string `yaml:"Exclude"`
	TargetVersion string   `yaml:"TargetVersion"`
}

// UnmarshalYAML splits the top-level mapping into the AllRules section and
// per-rule entries. Rule identifiers are not validated against the known
// rule set: entries for unknown rules are carried through untouched.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("config must be a mapping, got %v", value.Kind)
	}

	c.Rules = make(map[string]RuleCfg)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("invalid config key: %w", err)
		}

		if key == globalKey {
			if err := valNode.Decode(&c.Global); err != nil {
				return fmt.Errorf("invalid %s section: %w", globalKey, err)
			}
			continue
		}

		var rc RuleCfg
		if err := valNode.Decode(&rc); err != nil {
			return fmt.Errorf("invalid config for rule %q: %w", key, err)
		}
		c.Rules[key] = rc
	}
	return nil
}

// IsRuleEnabled returns the explicit enabled override for id, or nil when
// the config does not mention it.
func (c *Config) IsRuleEnabled(id string) *bool {
	rc, ok := c.Rules[id]
	if !ok {
		return nil
	}
	return rc.Enabled
}

// SeverityOverride returns the severity override for id, if the config
// carries a valid one. Load has already rejected invalid severity names,
// so a parse failure here just reads as "no override".
func (c *Config) SeverityOverride(id string) (lint.Severity, bool) {
	rc, ok := c.Rules[id]
	if !ok || rc.Severity == "" {
		return 0, false
	}
	sev, err := lint.ParseSeverity(rc.Severity)
	if err != nil {
		return 0, false
	}
	return sev, true
}

// Apply pushes the config's enabled/disabled overrides into the registry.
// Identifiers unknown to the registry pass through unvalidated.
func (c *Config) Apply(reg *rule.Registry) {
	for id, rc := range c.Rules {
		if rc.Enabled == nil {
			continue
		}
		if *rc.Enabled {
			reg.Enable(id)
		} else {
			reg.Disable(id)
		}
	}
}
