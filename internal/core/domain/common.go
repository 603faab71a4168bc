package domain

// SystemActor is recorded as the author of changes made without an authenticated user.
const SystemActor = "system"

// ActorOrSystem returns actorID, or SystemActor when it is empty.
func ActorOrSystem(actorID string) string {
	if actorID == "" {
		return SystemActor
	}
	return actorID
}
