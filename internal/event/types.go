// internal/event/types.go
package event

const (
	WaveStarted      EventType = "WaveStarted"      // Data: WaveInfo
	WaveStateChanged EventType = "WaveStateChanged" // Data: WaveInfo
	WaveCompleted    EventType = "WaveCompleted"    // Data: WaveInfo
	EnemySpawned     EventType = "EnemySpawned"     // Data: EnemyInfo
	EnemyRemoved     EventType = "EnemyRemoved"     // Data: EnemyInfo
	SpawnSkipped     EventType = "SpawnSkipped"     // Data: SpawnSkip
	TowerPlaced      EventType = "TowerPlaced"      // Data: TowerInfo
	TowerRemoved     EventType = "TowerRemoved"     // Data: TowerInfo
	BuildCancelled   EventType = "BuildCancelled"   // Data: string (kind)
)

// WaveInfo describes the wave a wave event refers to.
type WaveInfo struct {
	Index int
	State string
}

// EnemyInfo describes a spawned or removed enemy.
type EnemyInfo struct {
	ID         string
	Kind       string
	X, Z       int
	ReachedEnd bool // removed because it got through
	Killed     bool // removed because its health ran out
	Bounty     int
}

// SpawnSkip explains why a queued spawn was dropped.
type SpawnSkip struct {
	Kind   string
	PathID string
	Reason string
}

// TowerInfo describes a placed or removed defender.
type TowerInfo struct {
	ID   string
	Kind string
	X, Z int
}
