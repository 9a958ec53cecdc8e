package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Significance
		Pathogenic: "#FF5F5F",
		Uncertain:  "#FFD700",
		Benign:     "#5FD75F",

		// Notifications
		SuccessFg: "#5FD75F",
		SuccessBg: "#005F00",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
