// Package theme resolves the CMS-authored theme and font choices into
// immutable token records. Resolution is a pure function of the theme
// name and brand overrides; the rendering side applies the tokens, so
// no ambient document state is touched here.
package theme

// Tokens is the full set of visual tokens for one resolved theme.
type Tokens struct {
	Name              string  `json:"name"`
	CSSClass          string  `json:"css_class"`
	Background        string  `json:"background"`
	SectionBackground string  `json:"section_background"`
	TextPrimary       string  `json:"text_primary"`
	TextSecondary     string  `json:"text_secondary"`
	HeroGradient      string  `json:"hero_gradient"`
	SectionsGradient  string  `json:"sections_gradient"`
	CardBackground    string  `json:"card_background"`
	AccentGradient    string  `json:"accent_gradient"`
	AnimationSpeed    string  `json:"animation_speed"`
	HoverScale        float64 `json:"hover_scale"`
	Radius            string  `json:"radius"`
	CardRadius        string  `json:"card_radius"`
	ButtonRadius      string  `json:"button_radius"`
	Primary           string  `json:"primary"`
	Secondary         string  `json:"secondary"`
}

// Overrides carries the brand-settings colors that may replace theme
// defaults. Background overrides only apply to the custom theme.
type Overrides struct {
	PrimaryColor           string
	SecondaryColor         string
	BackgroundColor        string
	SectionBackgroundColor string
}

const (
	defaultPrimary   = "#111827"
	defaultSecondary = "#6b7280"
)

var themes = map[string]Tokens{
	"minimal": {
		Name: "Clean & Minimal", CSSClass: "theme-minimal",
		Background: "#ffffff", SectionBackground: "#f8fafc",
		TextPrimary: "#111827", TextSecondary: "#6b7280",
		HeroGradient:     "linear-gradient(135deg, #f8fafc 0%, #e2e8f0 100%)",
		SectionsGradient: "linear-gradient(135deg, #ffffff 0%, #f8fafc 100%)",
		CardBackground:   "rgba(255, 255, 255, 0.8)",
		AccentGradient:   "rgba(0, 0, 0, 0.05)",
		AnimationSpeed:   "0.3s", HoverScale: 1.02,
		Radius: "8px", CardRadius: "12px", ButtonRadius: "8px",
	},
	"festival": {
		Name: "Festival Vibes", CSSClass: "theme-festival",
		Background: "#1a1625", SectionBackground: "#2d1b45",
		TextPrimary: "#f1f5f9", TextSecondary: "#cbd5e1",
		HeroGradient:     "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		SectionsGradient: "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
		CardBackground:   "rgba(255, 255, 255, 0.95)",
		AccentGradient:   "linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
		AnimationSpeed:   "0.4s", HoverScale: 1.08,
		Radius: "16px", CardRadius: "20px", ButtonRadius: "12px",
	},
	"bohemian": {
		Name: "Earthy Bohemian", CSSClass: "theme-bohemian",
		Background: "#f5f5dc", SectionBackground: "#f0e6d2",
		TextPrimary: "#111827", TextSecondary: "#6b7280",
		HeroGradient:     "linear-gradient(135deg, #d4a574 0%, #8b4513 100%)",
		SectionsGradient: "linear-gradient(135deg, #ddbea9 0%, #cb997e 100%)",
		CardBackground:   "rgba(245, 235, 220, 0.9)",
		AccentGradient:   "linear-gradient(135deg, #a8dadc 0%, #457b9d 100%)",
		AnimationSpeed:   "0.6s", HoverScale: 1.03,
		Radius: "12px", CardRadius: "16px", ButtonRadius: "20px",
	},
	"desert": {
		Name: "Desert Burn", CSSClass: "theme-desert",
		Background: "#fdf5e6", SectionBackground: "#f4e6d7",
		TextPrimary: "#111827", TextSecondary: "#6b7280",
		HeroGradient:     "linear-gradient(135deg, #ff8a80 0%, #ff5722 100%)",
		SectionsGradient: "linear-gradient(135deg, #ffab91 0%, #ff7043 100%)",
		CardBackground:   "rgba(255, 248, 225, 0.95)",
		AccentGradient:   "linear-gradient(135deg, #ff9800 0%, #e65100 100%)",
		AnimationSpeed:   "0.3s", HoverScale: 1.05,
		Radius: "8px", CardRadius: "12px", ButtonRadius: "24px",
	},
	"dark": {
		Name: "Dark Mode", CSSClass: "theme-dark",
		Background: "#0f172a", SectionBackground: "#1e293b",
		TextPrimary: "#f1f5f9", TextSecondary: "#cbd5e1",
		HeroGradient:     "linear-gradient(135deg, #1e293b 0%, #334155 100%)",
		SectionsGradient: "linear-gradient(135deg, #334155 0%, #475569 100%)",
		CardBackground:   "rgba(30, 41, 59, 0.8)",
		AccentGradient:   "linear-gradient(135deg, #3b82f6 0%, #1d4ed8 100%)",
		AnimationSpeed:   "0.3s", HoverScale: 1.02,
		Radius: "8px", CardRadius: "12px", ButtonRadius: "8px",
	},
	"sunset": {
		Name: "Sunset Vibes", CSSClass: "theme-sunset",
		Background: "#fff5f5", SectionBackground: "#fed7d7",
		TextPrimary: "#111827", TextSecondary: "#6b7280",
		HeroGradient:     "linear-gradient(135deg, #fed7d7 0%, #f56565 100%)",
		SectionsGradient: "linear-gradient(135deg, #fbb6ce 0%, #f687b3 100%)",
		CardBackground:   "rgba(255, 245, 245, 0.9)",
		AccentGradient:   "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
		AnimationSpeed:   "0.3s", HoverScale: 1.03,
		Radius: "12px", CardRadius: "16px", ButtonRadius: "16px",
	},
	"forest": {
		Name: "Forest", CSSClass: "theme-forest",
		Background: "#f0fff4", SectionBackground: "#e6fffa",
		TextPrimary: "#111827", TextSecondary: "#6b7280",
		HeroGradient:     "linear-gradient(135deg, #48bb78 0%, #2f855a 100%)",
		SectionsGradient: "linear-gradient(135deg, #9ae6b4 0%, #68d391 100%)",
		CardBackground:   "rgba(240, 255, 244, 0.9)",
		AccentGradient:   "linear-gradient(135deg, #38a169 0%, #2f855a 100%)",
		AnimationSpeed:   "0.3s", HoverScale: 1.03,
		Radius: "12px", CardRadius: "16px", ButtonRadius: "16px",
	},
	"ocean": {
		Name: "Ocean", CSSClass: "theme-ocean",
		Background: "#f0f9ff", SectionBackground: "#e0f2fe",
		TextPrimary: "#111827", TextSecondary: "#6b7280",
		HeroGradient:     "linear-gradient(135deg, #0ea5e9 0%, #0284c7 100%)",
		SectionsGradient: "linear-gradient(135deg, #7dd3fc 0%, #38bdf8 100%)",
		CardBackground:   "rgba(240, 249, 255, 0.9)",
		AccentGradient:   "linear-gradient(135deg, #0284c7 0%, #0369a1 100%)",
		AnimationSpeed:   "0.3s", HoverScale: 1.03,
		Radius: "12px", CardRadius: "16px", ButtonRadius: "16px",
	},
	"custom": {
		Name: "Custom", CSSClass: "theme-custom",
		Background: "#ffffff", SectionBackground: "#f8fafc",
		TextPrimary: "#111827", TextSecondary: "#6b7280",
		HeroGradient:     "linear-gradient(135deg, var(--brand-background) 0%, var(--brand-section-background) 100%)",
		SectionsGradient: "linear-gradient(135deg, var(--brand-section-background) 0%, var(--brand-background) 100%)",
		CardBackground:   "rgba(255, 255, 255, 0.8)",
		AccentGradient:   "linear-gradient(135deg, var(--brand-primary) 0%, var(--brand-secondary) 100%)",
		AnimationSpeed:   "0.3s", HoverScale: 1.02,
		Radius: "8px", CardRadius: "12px", ButtonRadius: "8px",
	},
}

// Resolve returns the tokens for a named theme with brand overrides
// applied. Unknown names fall back to minimal; only the custom theme
// honors background overrides.
func Resolve(name string, o Overrides) Tokens {
	t, ok := themes[name]
	if !ok {
		t = themes["minimal"]
	}

	if name == "custom" {
		if o.BackgroundColor != "" {
			t.Background = o.BackgroundColor
		}
		if o.SectionBackgroundColor != "" {
			t.SectionBackground = o.SectionBackgroundColor
		}
	}

	t.Primary = defaultPrimary
	if o.PrimaryColor != "" {
		t.Primary = o.PrimaryColor
	}
	t.Secondary = defaultSecondary
	if o.SecondaryColor != "" {
		t.Secondary = o.SecondaryColor
	}

	return t
}

// Names lists the known theme names. Order is unspecified.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}
