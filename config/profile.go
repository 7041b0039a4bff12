package config

// A Profile holds a named set of solver settings.
type Profile struct {
	// Variant is "values" or "ranges".
	Variant string `json:"variant,omitempty"`

	// Workers bounds how many initial intervals are solved concurrently.
	Workers int `json:"workers,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"log_level,omitempty"`
}

// Merge returns p with every non-zero field of override applied on top.
func (p Profile) Merge(override Profile) Profile {
	if override.Variant != "" {
		p.Variant = override.Variant
	}
	if override.Workers != 0 {
		p.Workers = override.Workers
	}
	if override.LogLevel != "" {
		p.LogLevel = override.LogLevel
	}
	return p
}
