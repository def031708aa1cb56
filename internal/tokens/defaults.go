package tokens

import "sync"

var (
	defaultsOnce sync.Once
	defaults     *Tables
)

// Default returns the built-in token tables. The returned value is shared and
// must not be modified; use Clone or Merge to derive a variant.
func Default() *Tables {
	defaultsOnce.Do(func() {
		defaults = buildDefaults()
	})
	return defaults
}

func shades(s100, s200, s300, s400, s500, s600, s700 string) Shades {
	return Shades{
		"100": s100,
		"200": s200,
		"300": s300,
		"400": s400,
		"500": s500,
		"600": s600,
		"700": s700,
	}
}

func buildDefaults() *Tables {
	return &Tables{
		Breakpoints: []Breakpoint{
			{Name: "small", MinWidth: 640},
			{Name: "medium", MinWidth: 768},
			{Name: "large", MinWidth: 1024},
			{Name: "xlarge", MinWidth: 1280},
		},
		Palette: map[string]Shades{
			"gray":   shades("#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155"),
			"blue":   shades("#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8"),
			"green":  shades("#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d"),
			"red":    shades("#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c"),
			"yellow": shades("#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207"),
			"purple": shades("#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed"),
			"cyan":   shades("#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490"),
		},
		Utility: map[string]string{
			"white":        "#ffffff",
			"black":        "#000000",
			"transparent":  "transparent",
			"currentColor": "currentColor",
			"inherit":      "inherit",
		},
		Themes: map[ThemeName]map[string]string{
			ThemeLight: {
				"text":       "gray--700",
				"textSubtle": "gray--500",
				"background": "white",
				"surface":    "gray--100",
				"border":     "gray--200",
				"primary":    "purple--500",
				"accent":     "blue--500",
				"success":    "green--500",
				"warning":    "yellow--400",
				"danger":     "red--500",
				"info":       "cyan--500",
				"focus":      "purple--300--50",
			},
			ThemeDark: {
				"text":       "gray--100",
				"textSubtle": "gray--300",
				"background": "black",
				"surface":    "gray--700",
				"border":     "purple--300--20",
				"primary":    "purple--300",
				"accent":     "blue--300",
				"success":    "green--300",
				"warning":    "yellow--300",
				"danger":     "red--300",
				"info":       "cyan--300",
				"focus":      "purple--400--50",
			},
		},
		Spacing: map[string]string{
			"none":     "0",
			"tightest": "2px",
			"tighter":  "4px",
			"tight":    "8px",
			"normal":   "16px",
			"loose":    "24px",
			"looser":   "32px",
			"loosest":  "64px",
		},
		Radii: map[string]string{
			"none":   "0",
			"tight":  "2px",
			"normal": "4px",
			"loose":  "8px",
			"round":  "9999px",
		},
		Borders: map[string]BorderStyle{
			"none":   {Style: "none", Width: "0"},
			"normal": {Style: "solid", Width: "1px"},
			"thick":  {Style: "solid", Width: "2px"},
			"dashed": {Style: "dashed", Width: "1px"},
			"dotted": {Style: "dotted", Width: "1px"},
			"double": {Style: "double", Width: "3px"},
		},
		Shadows: map[string]string{
			"none":   "none",
			"low":    "0 1px 2px rgba(0, 0, 0, 0.1)",
			"medium": "0 4px 8px rgba(0, 0, 0, 0.12)",
			"high":   "0 12px 24px rgba(0, 0, 0, 0.16)",
		},
		ZIndices: map[string]int{
			"below":    -1,
			"base":     0,
			"raised":   1,
			"dropdown": 10,
			"sticky":   100,
			"overlay":  1000,
			"modal":    1100,
			"toast":    1200,
		},
		FontSizes: map[string]FontSize{
			"xsmall":  {Size: "12px", LineHeight: "16px"},
			"small":   {Size: "14px", LineHeight: "20px"},
			"normal":  {Size: "16px", LineHeight: "24px"},
			"large":   {Size: "20px", LineHeight: "28px"},
			"xlarge":  {Size: "24px", LineHeight: "32px"},
			"xxlarge": {Size: "32px", LineHeight: "40px"},
		},
		LineHeights: map[string]string{
			"none":   "1",
			"tight":  "1.25",
			"normal": "1.5",
			"loose":  "2",
		},
		FontWeights: map[string]string{
			"light":  "300",
			"normal": "400",
			"medium": "500",
			"bold":   "700",
		},
		FontFamilies: map[string]string{
			"body":    "Inter, system-ui, sans-serif",
			"heading": "Inter, system-ui, sans-serif",
			"mono":    "\"JetBrains Mono\", ui-monospace, monospace",
		},
		Durations: map[string]string{
			"instant": "0ms",
			"fast":    "100ms",
			"normal":  "200ms",
			"slow":    "400ms",
		},
		Easings: map[string]string{
			"ease":   "ease",
			"linear": "linear",
			"in":     "ease-in",
			"out":    "ease-out",
			"inOut":  "ease-in-out",
		},
		Animations: map[string]string{
			"fadeIn":  "stylebox-fade-in",
			"fadeOut": "stylebox-fade-out",
			"spin":    "stylebox-spin",
			"pulse":   "stylebox-pulse",
		},
		Sizes: map[string]string{
			"full":   "100%",
			"half":   "50%",
			"third":  "33.333%",
			"screen": "100vw",
			"auto":   "auto",
		},
		FlexKeywords: map[string]string{
			"start":   "flex-start",
			"end":     "flex-end",
			"between": "space-between",
			"around":  "space-around",
			"evenly":  "space-evenly",
		},
	}
}
