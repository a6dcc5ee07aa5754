package domain

// templatePresets is the fixed preset catalog. Presets are immutable
// constants; lookups hand out copies so callers can never mutate the
// catalog through a returned value.
var templatePresets = []TemplatePreset{
	{
		ID:          TemplateStandard,
		Name:        "Standard Template",
		Description: "Classic layout with bordered table",
		Design: InvoiceDesign{
			Layout:            LayoutClassic,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableBordered,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderAccent,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateMinimal,
		Name:        "Minimal Template",
		Description: "Clean, minimal design with ample whitespace",
		Design: InvoiceDesign{
			Layout:            LayoutMinimal,
			HeaderStyle:       HeaderLogoCentered,
			TableStyle:        TableMinimal,
			FontFamily:        FontSans,
			Density:           DensitySpacious,
			ShowSectionLabels: false,
			BorderStyle:       BorderNeutral,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateReceipt,
		Name:        "Receipt Template",
		Description: "Compact receipt-style layout",
		Design: InvoiceDesign{
			Layout:            LayoutCompact,
			HeaderStyle:       HeaderLogoCentered,
			TableStyle:        TableStriped,
			FontFamily:        FontMono,
			Density:           DensityCompact,
			ShowSectionLabels: true,
			BorderStyle:       BorderAccent,
			LogoSize:          LogoSmall,
		},
	},
	{
		ID:          TemplateAWS,
		Name:        "AWS Style Template",
		Description: "Professional layout with light blue section headers and orange table accents",
		Design: InvoiceDesign{
			Layout:            LayoutClassic,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableStriped,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderNeutral,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateSauceLabs,
		Name:        "SauceLabs Style Template",
		Description: "Clean design with dark purple header band and prominent amount due",
		Design: InvoiceDesign{
			Layout:            LayoutClassic,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableBordered,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderAccent,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateReadyAPI,
		Name:        "Ready API Style Template",
		Description: "Clean, straightforward layout with company details and billing period",
		Design: InvoiceDesign{
			Layout:            LayoutClassic,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableBordered,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderNeutral,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateLambdaTest,
		Name:        "LambdaTest Style Template",
		Description: "Layout with subscription terms and red/orange accents",
		Design: InvoiceDesign{
			Layout:            LayoutClassic,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableBordered,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderAccent,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateHardware,
		Name:        "Hardware / Equipment Template",
		Description: "Product-focused layout with Items, P.O. number, and Amount Due",
		Design: InvoiceDesign{
			Layout:            LayoutClassic,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableBordered,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderNeutral,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateGitHub,
		Name:        "GitHub Style Template",
		Description: "Clean, minimal layout with dark accents and billing period",
		Design: InvoiceDesign{
			Layout:            LayoutMinimal,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableMinimal,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderNeutral,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateAtlassian,
		Name:        "Atlassian Style Template",
		Description: "Remittance advice layout with Description, Currency, Amount columns",
		Design: InvoiceDesign{
			Layout:            LayoutClassic,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableBordered,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderAccent,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateAirbnb,
		Name:        "Airbnb Rental Template",
		Description: "Vacation rental style with guest info and booking charges",
		Design: InvoiceDesign{
			Layout:            LayoutClassic,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableMinimal,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderAccent,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateHomeDepot,
		Name:        "Home Depot Style Template",
		Description: "Retail/home improvement receipt style with orange accents",
		Design: InvoiceDesign{
			Layout:            LayoutCompact,
			HeaderStyle:       HeaderLogoCentered,
			TableStyle:        TableBordered,
			FontFamily:        FontSans,
			Density:           DensityCompact,
			ShowSectionLabels: true,
			BorderStyle:       BorderAccent,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateHotel,
		Name:        "Hotel Invoice Template",
		Description: "Hospitality style with guest info and stay charges",
		Design: InvoiceDesign{
			Layout:            LayoutClassic,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableBordered,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderAccent,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateAirlines,
		Name:        "Airlines Invoice Template",
		Description: "Travel industry style with passenger and flight details",
		Design: InvoiceDesign{
			Layout:            LayoutClassic,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableStriped,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderAccent,
			LogoSize:          LogoMedium,
		},
	},
	{
		ID:          TemplateCarRental,
		Name:        "Car Rental Invoice Template",
		Description: "Rental style with vehicle and rental period details",
		Design: InvoiceDesign{
			Layout:            LayoutClassic,
			HeaderStyle:       HeaderLogoLeft,
			TableStyle:        TableBordered,
			FontFamily:        FontSans,
			Density:           DensityStandard,
			ShowSectionLabels: true,
			BorderStyle:       BorderAccent,
			LogoSize:          LogoMedium,
		},
	},
}

// TemplatePresets returns a copy of the full preset catalog in catalog order.
func TemplatePresets() []TemplatePreset {
	out := make([]TemplatePreset, len(templatePresets))
	copy(out, templatePresets)
	return out
}

// PresetByID looks up a preset by id. The second return is false for ids
// not in the catalog; callers treat that as "fall back to the default".
func PresetByID(id TemplateID) (TemplatePreset, bool) {
	for _, p := range templatePresets {
		if p.ID == id {
			return p, true
		}
	}
	return TemplatePreset{}, false
}
