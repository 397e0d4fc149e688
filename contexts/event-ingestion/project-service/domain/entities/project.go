package entities

import (
	"strings"
	"time"

	"rawvault/internal/shared/relocation"
)

const MaxProjectNameLength = 200

// Project owns raw events. Every stored raw event references exactly
// one project; deleting a project is out of scope here.
type Project struct {
	ProjectID string
	Name      string
	CreatedAt time.Time
}

// RelocationScope marks projects as exportable with their organization,
// unlike the raw events they own.
func (Project) RelocationScope() relocation.Scope {
	return relocation.Organization
}

func (p Project) ValidName() bool {
	name := strings.TrimSpace(p.Name)
	return name != "" && len(name) <= MaxProjectNameLength
}
