package engine

type Zone string

const (
	ZoneBlue   Zone = "blue"
	ZoneGreen  Zone = "green"
	ZoneYellow Zone = "yellow"
	ZoneRed    Zone = "red"
)

// Zones returns every zone in display order, calmest-low to most intense.
func Zones() []Zone {
	return []Zone{ZoneBlue, ZoneGreen, ZoneYellow, ZoneRed}
}

func (z Zone) IsValid() bool {
	switch z {
	case ZoneBlue, ZoneGreen, ZoneYellow, ZoneRed:
		return true
	default:
		return false
	}
}

// DefaultZoneDescriptions are shown until the user writes their own.
func DefaultZoneDescriptions() map[Zone]string {
	return map[Zone]string{
		ZoneBlue:   "Feeling sad, tired, or need quiet time",
		ZoneGreen:  "Feeling happy, calm, and ready to learn",
		ZoneYellow: "Feeling worried, frustrated, or wiggly",
		ZoneRed:    "Feeling angry, scared, or overwhelmed",
	}
}

type Theme string

const (
	ThemeDefault      Theme = "default"
	ThemeHighContrast Theme = "high_contrast"
	ThemeDark         Theme = "dark"
)

type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeNormal FontSize = "normal"
	FontSizeLarge  FontSize = "large"
)
