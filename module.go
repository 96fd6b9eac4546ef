package eventsystem

// InputModule translates one input modality into events. An [EventSystem]
// keeps at most one module current at a time and only calls Process on that
// one.
type InputModule interface {
	// IsActive reports whether the module takes part in scheduling at all.
	// Inactive modules are dropped from the active list every tick.
	IsActive() bool
	// IsModuleSupported reports whether the platform can drive this module.
	IsModuleSupported() bool
	// ShouldActivateModule reports whether the module wants to become
	// current, typically because its input device saw activity.
	ShouldActivateModule() bool
	// ActivateModule is called when the module becomes current.
	ActivateModule()
	// DeactivateModule is called when the module stops being current.
	DeactivateModule()
	// UpdateModule is called on every active module each tick, current or not.
	UpdateModule()
	// Process dispatches events for the tick. Only called on the current module.
	Process()
	// IsPointerOverTarget reports whether the given pointer is over a target.
	IsPointerOverTarget(pointerID int) bool
}

// BaseInputModule provides default implementations for everything in
// [InputModule] except Process. Embed it and override what differs.
type BaseInputModule struct {
	// Disabled removes the module from scheduling.
	Disabled bool
}

// IsActive reports whether the module is enabled.
func (m *BaseInputModule) IsActive() bool { return !m.Disabled }

// IsModuleSupported returns true.
func (m *BaseInputModule) IsModuleSupported() bool { return true }

// ShouldActivateModule returns true while the module is enabled.
func (m *BaseInputModule) ShouldActivateModule() bool { return !m.Disabled }

// ActivateModule does nothing.
func (m *BaseInputModule) ActivateModule() {}

// DeactivateModule does nothing.
func (m *BaseInputModule) DeactivateModule() {}

// UpdateModule does nothing.
func (m *BaseInputModule) UpdateModule() {}

// IsPointerOverTarget returns false.
func (m *BaseInputModule) IsPointerOverTarget(pointerID int) bool { return false }
