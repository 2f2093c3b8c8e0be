package config

import "charm.land/lipgloss/v2"

// BorderStyle is the card border style, set once from flags/config at
// startup.
var BorderStyle = "rounded"

// GetBorderForStyle returns the lipgloss border for the configured style.
func GetBorderForStyle() lipgloss.Border {
	if AsciiOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}
