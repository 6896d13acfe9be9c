package engine

import "strings"

// ParseZone parses user input to a Zone.
// Accepts the zone name in any case, or its emoji.
func ParseZone(input string) (Zone, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "blue", "🔵":
		return ZoneBlue, nil
	case "green", "🟢":
		return ZoneGreen, nil
	case "yellow", "🟡":
		return ZoneYellow, nil
	case "red", "🔴":
		return ZoneRed, nil
	case "":
		return "", InvalidArgumentError{Field: "zone", Reason: "is required"}
	default:
		return "", InvalidArgumentError{Field: "zone", Reason: "must be one of blue, green, yellow, red (got " + input + ")"}
	}
}
