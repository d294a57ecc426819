package domain

type ListKind string

const (
	KindChecklist ListKind = "checklist"
	KindResources ListKind = "resources"
	KindSteps     ListKind = "steps"
	KindSchedule  ListKind = "schedule"
	KindTimeline  ListKind = "timeline"
)

// ValidListKinds is the canonical set of accepted list kind strings.
var ValidListKinds = map[string]bool{
	"checklist": true, "resources": true, "steps": true,
	"schedule": true, "timeline": true,
}

// Timed reports whether items of this kind carry a clock time.
func (k ListKind) Timed() bool {
	return k == KindSchedule || k == KindTimeline
}
