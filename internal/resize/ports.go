package resize

// Store is a string key/value store holding persisted sizes.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// VarSetter mirrors a size into a named, process-wide dimension.
type VarSetter interface {
	SetVar(name string, size float64)
}

// Host receives the global side effects of a drag: capturing the pointer
// and switching the surface into resize mode (cursor and selection).
type Host interface {
	BeginResize(pointerID int)
	EndResize()
}

// Surface is the element whose principal dimension the controller owns.
type Surface interface {
	SetWidth(size float64)
}

// Ports groups the injected side effects. A nil port disables its effect.
type Ports struct {
	Store Store
	Vars  VarSetter
	Host  Host
}
