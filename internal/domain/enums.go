package domain

// Layout is the overall arrangement style of the rendered invoice.
type Layout string

const (
	LayoutClassic Layout = "classic"
	LayoutCompact Layout = "compact"
	LayoutMinimal Layout = "minimal"
	LayoutModern  Layout = "modern"
)

// HeaderStyle controls logo and title placement in the header block.
type HeaderStyle string

const (
	HeaderLogoLeft     HeaderStyle = "logo-left"
	HeaderLogoRight    HeaderStyle = "logo-right"
	HeaderLogoCentered HeaderStyle = "logo-centered"
)

// TableStyle controls the line-item table treatment.
type TableStyle string

const (
	TableBordered TableStyle = "bordered"
	TableStriped  TableStyle = "striped"
	TableMinimal  TableStyle = "minimal"
)

// FontFamily is the typography style of the invoice.
type FontFamily string

const (
	FontSans  FontFamily = "sans"
	FontSerif FontFamily = "serif"
	FontMono  FontFamily = "mono"
)

// Density is the vertical spacing density. Container padding, inter-section
// margin, and table row padding always scale together.
type Density string

const (
	DensitySpacious Density = "spacious"
	DensityStandard Density = "standard"
	DensityCompact  Density = "compact"
)

// BorderStyle is the border treatment for header and totals dividers.
type BorderStyle string

const (
	BorderAccent  BorderStyle = "accent"
	BorderNeutral BorderStyle = "neutral"
	BorderNone    BorderStyle = "none"
)

// LogoSize is the rendered logo size in the header.
type LogoSize string

const (
	LogoSmall  LogoSize = "small"
	LogoMedium LogoSize = "medium"
	LogoLarge  LogoSize = "large"
)

// TemplateID identifies a preset in the template catalog.
type TemplateID string

const (
	TemplateStandard   TemplateID = "standard"
	TemplateMinimal    TemplateID = "minimal"
	TemplateReceipt    TemplateID = "receipt"
	TemplateAWS        TemplateID = "aws"
	TemplateSauceLabs  TemplateID = "saucelabs"
	TemplateReadyAPI   TemplateID = "readyapi"
	TemplateLambdaTest TemplateID = "lambdatest"
	TemplateHardware   TemplateID = "hardware"
	TemplateGitHub     TemplateID = "github"
	TemplateAtlassian  TemplateID = "atlassian"
	TemplateAirbnb     TemplateID = "airbnb"
	TemplateHomeDepot  TemplateID = "homedepot"
	TemplateHotel      TemplateID = "hotel"
	TemplateAirlines   TemplateID = "airlines"
	TemplateCarRental  TemplateID = "carrental"
)

// AllowedLayouts enumerates valid Layout values.
var AllowedLayouts = map[Layout]bool{
	LayoutClassic: true,
	LayoutCompact: true,
	LayoutMinimal: true,
	LayoutModern:  true,
}

// AllowedHeaderStyles enumerates valid HeaderStyle values.
var AllowedHeaderStyles = map[HeaderStyle]bool{
	HeaderLogoLeft:     true,
	HeaderLogoRight:    true,
	HeaderLogoCentered: true,
}

// AllowedTableStyles enumerates valid TableStyle values.
var AllowedTableStyles = map[TableStyle]bool{
	TableBordered: true,
	TableStriped:  true,
	TableMinimal:  true,
}

// AllowedFontFamilies enumerates valid FontFamily values.
var AllowedFontFamilies = map[FontFamily]bool{
	FontSans:  true,
	FontSerif: true,
	FontMono:  true,
}

// AllowedDensities enumerates valid Density values.
var AllowedDensities = map[Density]bool{
	DensitySpacious: true,
	DensityStandard: true,
	DensityCompact:  true,
}

// AllowedBorderStyles enumerates valid BorderStyle values.
var AllowedBorderStyles = map[BorderStyle]bool{
	BorderAccent:  true,
	BorderNeutral: true,
	BorderNone:    true,
}

// AllowedLogoSizes enumerates valid LogoSize values.
var AllowedLogoSizes = map[LogoSize]bool{
	LogoSmall:  true,
	LogoMedium: true,
	LogoLarge:  true,
}
