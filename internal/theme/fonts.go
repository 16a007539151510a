package theme

import "fmt"

// FontWeights is one tier of font weights derived from the brand's
// weight style.
type FontWeights struct {
	Normal   string `json:"normal"`
	Medium   string `json:"medium"`
	Semibold string `json:"semibold"`
	Bold     string `json:"bold"`
}

// FontTokens is the resolved font pairing for a brand: CSS families,
// weight tiers, and the Google Fonts stylesheets the page must load.
type FontTokens struct {
	HeaderFamily   string      `json:"header_family"`
	BodyFamily     string      `json:"body_family"`
	Weights        FontWeights `json:"weights"`
	StylesheetURLs []string    `json:"stylesheet_urls,omitempty"`
}

// googleFontSpecs maps font keys to their Google Fonts request spec.
// The system font needs no stylesheet.
var googleFontSpecs = map[string]string{
	"inter":        "Inter:wght@300;400;500;600;700;800",
	"playfair":     "Playfair+Display:wght@400;500;600;700;800",
	"montserrat":   "Montserrat:wght@300;400;500;600;700;800",
	"poppins":      "Poppins:wght@300;400;500;600;700;800",
	"oswald":       "Oswald:wght@300;400;500;600;700",
	"dancing":      "Dancing+Script:wght@400;500;600;700",
	"bebas":        "Bebas+Neue:wght@400",
	"righteous":    "Righteous:wght@400",
	"opensans":     "Open+Sans:wght@300;400;500;600;700;800",
	"lato":         "Lato:wght@300;400;700;900",
	"sourcesans":   "Source+Sans+Pro:wght@300;400;600;700;900",
	"nunito":       "Nunito:wght@300;400;500;600;700;800",
	"roboto":       "Roboto:wght@300;400;500;700;900",
	"merriweather": "Merriweather:wght@300;400;700;900",
}

var fontFamilies = map[string]string{
	"inter":        "'Inter', sans-serif",
	"playfair":     "'Playfair Display', serif",
	"montserrat":   "'Montserrat', sans-serif",
	"poppins":      "'Poppins', sans-serif",
	"oswald":       "'Oswald', sans-serif",
	"dancing":      "'Dancing Script', cursive",
	"bebas":        "'Bebas Neue', sans-serif",
	"righteous":    "'Righteous', sans-serif",
	"opensans":     "'Open Sans', sans-serif",
	"lato":         "'Lato', sans-serif",
	"sourcesans":   "'Source Sans Pro', sans-serif",
	"nunito":       "'Nunito', sans-serif",
	"roboto":       "'Roboto', sans-serif",
	"merriweather": "'Merriweather', serif",
	"system":       "system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif",
}

var fontWeightTiers = map[string]FontWeights{
	"light":  {Normal: "300", Medium: "400", Semibold: "500", Bold: "600"},
	"normal": {Normal: "400", Medium: "500", Semibold: "600", Bold: "700"},
	"bold":   {Normal: "500", Medium: "600", Semibold: "700", Bold: "800"},
}

// ResolveFonts maps the brand's header/body font keys and weight style
// to concrete font tokens. Unknown keys fall back to inter; unknown
// weight styles fall back to normal.
func ResolveFonts(headerFont, bodyFont, weightStyle string) FontTokens {
	if _, ok := fontFamilies[headerFont]; !ok {
		headerFont = "inter"
	}
	if _, ok := fontFamilies[bodyFont]; !ok {
		bodyFont = "inter"
	}
	weights, ok := fontWeightTiers[weightStyle]
	if !ok {
		weights = fontWeightTiers["normal"]
	}

	tokens := FontTokens{
		HeaderFamily: fontFamilies[headerFont],
		BodyFamily:   fontFamilies[bodyFont],
		Weights:      weights,
	}

	for _, key := range dedupe(headerFont, bodyFont) {
		spec, ok := googleFontSpecs[key]
		if !ok {
			continue
		}
		tokens.StylesheetURLs = append(tokens.StylesheetURLs,
			fmt.Sprintf("https://fonts.googleapis.com/css2?family=%s&display=swap", spec))
	}
	return tokens
}

func dedupe(keys ...string) []string {
	seen := make(map[string]bool, len(keys))
	out := keys[:0]
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
