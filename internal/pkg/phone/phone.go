package phone

import (
	"regexp"
	"strings"
)

// Moolre channel codes for the Ghanaian mobile network operators.
const (
	ChannelMTN        = 13
	ChannelVodafone   = 6
	ChannelAirtelTigo = 7
)

var carrierPrefixes = map[string]int{
	"024": ChannelMTN,
	"054": ChannelMTN,
	"055": ChannelMTN,
	"020": ChannelVodafone,
	"050": ChannelVodafone,
	"026": ChannelAirtelTigo,
	"056": ChannelAirtelTigo,
}

var parenthesized = regexp.MustCompile(`\(([^)]+)\)`)

// Normalize strips every non-digit character from a raw phone number.
// Empty input yields an empty string; no length or country-code
// validation happens here.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Channel resolves the processor channel code from the first three
// digits of a normalized number. Unknown prefixes fall back to MTN.
func Channel(normalized string) int {
	if len(normalized) < 3 {
		return ChannelMTN
	}
	if ch, ok := carrierPrefixes[normalized[:3]]; ok {
		return ch
	}
	return ChannelMTN
}

// ExtractPayerNumber pulls the parenthesized number fragment out of a
// payer display string such as "MTN Mobile Money (233531300654)".
// Without a fragment the display string itself is returned; an empty
// display string falls back to the alternate number.
func ExtractPayerNumber(payer, fallback string) string {
	if payer == "" {
		return fallback
	}
	if m := parenthesized.FindStringSubmatch(payer); m != nil && m[1] != "" {
		return m[1]
	}
	return payer
}
