package ui

// Styles holds the color palette for the current theme. Two palettes
// exist; which one is active follows the persisted dark-mode flag.
type Styles struct {
	BorderColor       string
	AccentColor       string
	NormalTextColor   string
	MutedTextColor    string
	SelectedTextColor string
	SelectedBgColor   string
	ErrorColor        string
	BadgeTextColor    string
	BadgeBgColor      string
}

func lightStyles() Styles {
	return Styles{
		BorderColor:       "250",
		AccentColor:       "61",
		NormalTextColor:   "236",
		MutedTextColor:    "245",
		SelectedTextColor: "231",
		SelectedBgColor:   "61",
		ErrorColor:        "160",
		BadgeTextColor:    "231",
		BadgeBgColor:      "103",
	}
}

func darkStyles() Styles {
	return Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "252",
		MutedTextColor:    "243",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		BadgeTextColor:    "229",
		BadgeBgColor:      "237",
	}
}

func stylesFor(dark bool) Styles {
	if dark {
		return darkStyles()
	}
	return lightStyles()
}
