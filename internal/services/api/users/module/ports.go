package module

import (
	usersdomain "funnel/internal/services/api/users/domain"
)

// Ports exposes the user directory for cross module wiring
type Ports struct {
	Directory usersdomain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
