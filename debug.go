package eventsystem

import (
	"fmt"
	"strings"
)

// SetDebugMode enables or disables debug-level records for module
// transitions. The logger's level still decides whether they are written.
func (s *EventSystem) SetDebugMode(enabled bool) {
	s.debug = enabled
}

func (s *EventSystem) debugModuleChange(from, to InputModule) {
	if !s.debug {
		return
	}
	s.log.Debug("input module changed",
		"from", moduleName(from),
		"to", moduleName(to),
		"active_modules", len(s.modules))
}

// String describes the selected target and the current module.
func (s *EventSystem) String() string {
	var sb strings.Builder
	sb.WriteString("Selected: ")
	sb.WriteString(targetName(s.selected))
	sb.WriteString("\n\n\n")
	if s.current != nil {
		sb.WriteString(moduleName(s.current))
	} else {
		sb.WriteString("No module")
	}
	sb.WriteString("\n")
	return sb.String()
}

func moduleName(m InputModule) string {
	if m == nil {
		return "<nil>"
	}
	if st, ok := m.(fmt.Stringer); ok {
		return st.String()
	}
	return fmt.Sprintf("%T", m)
}
