package pipeline

func generateUI(intent Intent) UITheme {
	theme := UITheme{Layout: "adaptive"}

	switch intent.Emotion {
	case "frustration":
		theme.Theme = "calm"
		theme.ColorScheme = "blue"
	case "excitement":
		theme.Theme = "energetic"
		theme.ColorScheme = "vibrant"
	default:
		theme.Theme = "neutral"
		theme.ColorScheme = "standard"
	}

	return theme
}
