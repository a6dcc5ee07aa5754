package render

import "invoicestudio/internal/domain"

// Spacing is the pixel spacing scale derived from the density setting.
// The four measures always move together; no variant may scale one
// independently of the others.
type Spacing struct {
	Container int `json:"container"`
	Section   int `json:"section"`
	Row       int `json:"row"`
	Totals    int `json:"totals"`
}

var spacingScale = map[domain.Density]Spacing{
	domain.DensitySpacious: {Container: 40, Section: 48, Row: 20, Totals: 40},
	domain.DensityStandard: {Container: 32, Section: 40, Row: 16, Totals: 32},
	domain.DensityCompact:  {Container: 20, Section: 24, Row: 8, Totals: 24},
}

// SpacingFor returns the spacing scale for a density, defaulting to the
// standard scale for unknown values.
func SpacingFor(d domain.Density) Spacing {
	if s, ok := spacingScale[d]; ok {
		return s
	}
	return spacingScale[domain.DensityStandard]
}
