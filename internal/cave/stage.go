package cave

// Stage is a step of cave construction. Stages only move forward.
type Stage int

const (
	StageConfigure Stage = iota
	StageGenerateLayers
	StageResolveConnectivity
	StageLinkFloors
	StagePopulateItems
	StageReady
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageConfigure:
		return "configure"
	case StageGenerateLayers:
		return "generate_layers"
	case StageResolveConnectivity:
		return "resolve_connectivity"
	case StageLinkFloors:
		return "link_floors"
	case StagePopulateItems:
		return "populate_items"
	case StageReady:
		return "ready"
	default:
		return "unknown"
	}
}
