package mdtty

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8 bool
}

// WithOSC8 enables or disables OSC 8 hyperlink anchors around the inline
// link indices.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}
