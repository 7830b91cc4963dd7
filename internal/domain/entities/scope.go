package entities

// Scope carries the owning space and the acting identity of a request.
// Every lifecycle operation receives it explicitly.
type Scope struct {
	OwnerSpaceID string
	ActorID      string
}

// SchedulerActorID is recorded as UpdatedBy when the due-scan job executes
// an item.
const SchedulerActorID = "system:scheduler"
