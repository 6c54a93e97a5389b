package model

import "strings"

// BadgeVariant selects the visual style of a status badge.
type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeOutline     BadgeVariant = "outline"
	BadgeDestructive BadgeVariant = "destructive"
)

// variantFor looks status up case-insensitively in table and returns
// fallback when it is not listed.
func variantFor(status string, table map[string]BadgeVariant, fallback BadgeVariant) BadgeVariant {
	if v, ok := table[strings.ToLower(status)]; ok {
		return v
	}
	return fallback
}
