package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Advisories returns non-fatal findings about optional manifest fields.
// facetPHP is the PHP version the generated facet descriptor pins; a
// require.php constraint that excludes it is reported.
func (m *Manifest) Advisories(facetPHP string) []string {
	var warnings []string

	if m.Version != "" {
		if _, err := semver.NewVersion(m.Version); err != nil {
			warnings = append(warnings,
				fmt.Sprintf("version %q is not a valid semantic version", m.Version))
		}
	}

	if m.PHP != "" {
		c, err := semver.NewConstraint(m.PHP)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("require.php constraint %q cannot be parsed: %v", m.PHP, err))
			return warnings
		}
		v, err := semver.NewVersion(facetPHP)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("facet PHP version %q is not a valid version", facetPHP))
			return warnings
		}
		if !c.Check(v) {
			warnings = append(warnings,
				fmt.Sprintf("require.php %q excludes PHP %s pinned in the facet descriptor; adjust it in Eclipse project properties", m.PHP, facetPHP))
		}
	}

	return warnings
}
