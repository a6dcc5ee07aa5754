package render

// palette holds a branded variant's fixed colors. Palettes are bound into
// each variant at registration and never mutated.
type palette struct {
	Accent   string
	HeaderBg string
	LightBg  string
	RowShade string
	Dark     string
	Text     string
}

// Neutral colors shared across variants.
const (
	neutralBorder  = "#D4D4D4" // neutral-300
	lightDivider   = "#E5E5E5" // neutral-200
	subtleDivider  = "#F5F5F5" // neutral-100
	subtleRowShade = "#FAFAFA" // neutral-50
)

var (
	awsPalette = palette{
		HeaderBg: "#E3F2FD", // light blue section headers
		RowShade: "#FFF3E0", // light orange
		LightBg:  "#F5F5F5", // total row
	}
	sauceLabsPalette = palette{
		Dark:   "#4A148C", // header band purple
		Accent: "#5E35B1", // label purple
	}
	lambdaTestPalette = palette{
		Accent:   "#E0234E",
		HeaderBg: "#E0234E",
		LightBg:  "#FFF5F7",
	}
	gitHubPalette = palette{
		Dark: "#24292F",
		Text: "#57606A",
	}
	atlassianPalette = palette{
		Accent:   "#0052CC",
		HeaderBg: "#0052CC",
		LightBg:  "#DEEBFF",
	}
	airbnbPalette = palette{
		Accent:   "#FF5A5F",
		HeaderBg: "#FF5A5F",
		LightBg:  "#FFF8F6",
	}
	homeDepotPalette = palette{
		Accent:   "#F96302",
		HeaderBg: "#F96302",
		Dark:     "#333333",
	}
	hotelPalette = palette{
		Accent:   "#1E3A5F",
		HeaderBg: "#1E3A5F",
		LightBg:  "#F0F4F8",
	}
	airlinesPalette = palette{
		Accent:   "#003366",
		HeaderBg: "#003366",
		LightBg:  "#E8EEF4",
	}
	carRentalPalette = palette{
		Accent:   "#0D9488",
		HeaderBg: "#0D9488",
		LightBg:  "#CCFBF1",
	}
)
