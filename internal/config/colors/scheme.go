package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (menu numbers, table headers, borders)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Empty query results
	Normal string `yaml:"normal"`

	// Clinical significance colors used in result tables
	Pathogenic string `yaml:"pathogenic"`
	Uncertain  string `yaml:"uncertain"`
	Benign     string `yaml:"benign"`

	// Notification colors (foreground/background pairs)
	SuccessFg string `yaml:"success_fg"`
	SuccessBg string `yaml:"success_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	c.MergeMissing(*GetPreset(c.Preset))
	if c.Preset == "" {
		c.Preset = "default"
	}
}

// MergeMissing copies every color of base that c leaves empty
func (c *ColorScheme) MergeMissing(base ColorScheme) {
	for _, f := range c.fields(&base) {
		if *f.dst == "" {
			*f.dst = *f.src
		}
	}
}

type fieldPair struct {
	dst *string
	src *string
}

// fields pairs each color of c with the same color of o
func (c *ColorScheme) fields(o *ColorScheme) []fieldPair {
	return []fieldPair{
		{&c.Accent, &o.Accent},
		{&c.Title, &o.Title},
		{&c.Subtle, &o.Subtle},
		{&c.Normal, &o.Normal},
		{&c.Pathogenic, &o.Pathogenic},
		{&c.Uncertain, &o.Uncertain},
		{&c.Benign, &o.Benign},
		{&c.SuccessFg, &o.SuccessFg},
		{&c.SuccessBg, &o.SuccessBg},
		{&c.WarningFg, &o.WarningFg},
		{&c.WarningBg, &o.WarningBg},
		{&c.ErrorFg, &o.ErrorFg},
		{&c.ErrorBg, &o.ErrorBg},
	}
}
