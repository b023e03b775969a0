package styles

// EmbeddedStyles exposes the embedded YAML to the external test package
func EmbeddedStyles() []byte { return embeddedStyles }
