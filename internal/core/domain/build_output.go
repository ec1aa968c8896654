package domain

// Manifest maps logical asset paths to the hashed paths emitted by the build.
type Manifest map[string]string

// Entrypoints is the parsed form of entrypoints.json.
type Entrypoints struct {
	// A null entry decodes to nil and is treated as absent.
	EntryPoints map[string]*EntryPoint `json:"entrypoints"`
	// Integrity maps asset URLs to subresource integrity hashes when the build emits them.
	Integrity map[string]string `json:"integrity,omitempty"`
}

// EntryPoint lists the chunks of one named bundle in load order.
type EntryPoint struct {
	JS  []string `json:"js,omitempty"`
	CSS []string `json:"css,omitempty"`
}

// Lookup returns the entry point with the given name.
func (e *Entrypoints) Lookup(name string) (EntryPoint, bool) {
	if e == nil {
		return EntryPoint{}, false
	}
	ep := e.EntryPoints[name]
	if ep == nil {
		return EntryPoint{}, false
	}
	return *ep, true
}
