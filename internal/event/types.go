// internal/event/types.go
package event

const (
	EntitySpawned     EventType = "EntitySpawned"     // enemy created by the spawner
	DeathBegan        EventType = "DeathBegan"        // health reached zero, exit sequence starts
	EntityRemoved     EventType = "EntityRemoved"     // enemy swept from the registry
	ProjectileFired   EventType = "ProjectileFired"   // projectile created
	ProjectileRemoved EventType = "ProjectileRemoved" // projectile swept; Data holds its component.Outcome
)
