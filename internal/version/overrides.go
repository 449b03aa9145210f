package version

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

// Overrides is an optional, operator-supplied correction to a resolved
// Profile's Protocol flags, for versions whose upstream thresholds are
// marked as guesses (see DESIGN.md). It never invents new flags; it only
// flips ones already present on Protocol.
type Overrides struct {
	Protocol map[string]bool `yaml:"protocol"`
}

// LoadOverrides reads a YAML override file of the form:
//
//	protocol:
//	  ExpertMode: true
//	  SkillsU16: false
func LoadOverrides(path string) (*Overrides, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, rerr.Invalid("version.LoadOverrides", "reading %s: %v", path, err)
	}
	var o Overrides
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return nil, rerr.Invalid("version.LoadOverrides", "parsing %s: %v", path, err)
	}
	return &o, nil
}

// Apply flips the named Protocol fields on p. Unknown field names fail
// with InvalidData rather than being silently ignored.
func (o *Overrides) Apply(p *Profile) error {
	if o == nil {
		return nil
	}
	for name, value := range o.Protocol {
		if !setProtocolField(&p.Protocol, name, value) {
			return rerr.Invalid("version.Overrides.Apply", "unknown protocol field %q", name)
		}
	}
	return nil
}
