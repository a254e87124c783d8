// internal/system/wave.go
package system

import (
	"log"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/enemy"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/timer"
	"go-grid-defense/pkg/gridmap"
)

// WaveState is the phase of the current wave.
type WaveState int

const (
	WaveWaiting    WaveState = iota // ждём, пока игрок запустит волну
	WaveSpawning                    // враги выходят по одному
	WaveInProgress                  // все вышли, ждём пока их не станет
	WaveCompleted
)

func (s WaveState) String() string {
	switch s {
	case WaveWaiting:
		return "WAITING"
	case WaveSpawning:
		return "SPAWNING"
	case WaveInProgress:
		return "IN_PROGRESS"
	case WaveCompleted:
		return "COMPLETED"
	}
	return "UNKNOWN"
}

// WavePresenter receives one-way notifications about wave progress. It can
// only influence the manager through StartNextWave.
type WavePresenter interface {
	SetWaves(waves []defs.WaveData)
	SetCurrentWave(index int)
	SetWaveState(state WaveState)
	SetProgress(current, total int)
}

type nopPresenter struct{}

func (nopPresenter) SetWaves([]defs.WaveData) {}
func (nopPresenter) SetCurrentWave(int)       {}
func (nopPresenter) SetWaveState(WaveState)   {}
func (nopPresenter) SetProgress(int, int)     {}

type spawnEntry struct {
	kind   string
	pathID string
}

// WaveManager paces enemy spawning for each scripted wave and detects when
// a wave is over.
type WaveManager struct {
	grid       *gridmap.Grid
	kinds      *enemy.Kinds
	registry   *entity.Registry
	presenter  WavePresenter
	dispatcher *event.Dispatcher
	scheduler  *timer.Scheduler

	waves        []defs.WaveData
	currentWave  int
	state        WaveState
	queue        []spawnEntry
	sinceSpawn   float64
	active       []*enemy.Enemy // spawn order
	totalInWave  int
	completion   *timer.Handle
	spawnSkipped int
}

func NewWaveManager(grid *gridmap.Grid, kinds *enemy.Kinds, registry *entity.Registry,
	presenter WavePresenter, dispatcher *event.Dispatcher, scheduler *timer.Scheduler) *WaveManager {
	if presenter == nil {
		presenter = nopPresenter{}
	}
	return &WaveManager{
		grid:        grid,
		kinds:       kinds,
		registry:    registry,
		presenter:   presenter,
		dispatcher:  dispatcher,
		scheduler:   scheduler,
		currentWave: -1,
	}
}

// Initialize loads a new wave list and rewinds to before the first wave.
func (m *WaveManager) Initialize(waves []defs.WaveData) {
	m.completion.Cancel()
	m.completion = nil
	m.clearTracking()

	m.waves = append([]defs.WaveData(nil), waves...)
	m.currentWave = -1
	m.totalInWave = 0
	m.presenter.SetWaves(m.waves)
	m.presenter.SetCurrentWave(0)
	m.setState(WaveWaiting)
}

// Reset rewinds the current wave list.
func (m *WaveManager) Reset() {
	m.Initialize(m.waves)
}

// Dispose cancels the pending completion timer and drops every tracked enemy.
func (m *WaveManager) Dispose() {
	m.completion.Cancel()
	m.completion = nil
	m.clearTracking()
	m.waves = nil
	m.currentWave = -1
	m.totalInWave = 0
	m.state = WaveWaiting
}

func (m *WaveManager) clearTracking() {
	for _, e := range m.active {
		m.registry.RemoveEntity(e.ID)
	}
	m.active = nil
	m.queue = nil
	m.sinceSpawn = 0
}

// StartNextWave is only allowed while waiting and only if a next wave exists.
func (m *WaveManager) StartNextWave() bool {
	if m.state != WaveWaiting || !m.HasMoreWaves() {
		return false
	}

	m.currentWave++
	wave := m.waves[m.currentWave]

	m.queue = m.queue[:0]
	m.totalInWave = 0
	m.active = nil
	for _, group := range wave.Spawns {
		for _, e := range group.Enemies {
			for i := 0; i < e.Count; i++ {
				m.queue = append(m.queue, spawnEntry{kind: e.Type, pathID: group.PathID})
				m.totalInWave++
			}
		}
	}

	m.sinceSpawn = 0
	m.presenter.SetCurrentWave(m.currentWave)
	m.setState(WaveSpawning)
	m.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: m.waveInfo()})
	return true
}

// Update runs one tick of the wave lifecycle.
func (m *WaveManager) Update(deltaTime float64) {
	switch m.state {
	case WaveSpawning:
		m.pruneFinished()
		m.updateSpawning(deltaTime)
	case WaveInProgress:
		m.pruneFinished()
		if len(m.active) == 0 {
			m.complete()
		}
	}

	if m.state == WaveSpawning || m.state == WaveInProgress {
		m.presenter.SetProgress(m.Progress())
	}
}

func (m *WaveManager) updateSpawning(deltaTime float64) {
	m.sinceSpawn += deltaTime

	if m.sinceSpawn >= config.SpawnInterval && len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		m.spawn(next)
		m.sinceSpawn = 0
	}

	if len(m.queue) == 0 {
		m.setState(WaveInProgress)
	}
}

func (m *WaveManager) spawn(entry spawnEntry) {
	at, ok := m.grid.SpawnPoint(entry.pathID)
	if !ok {
		m.skip(entry, "no spawn point with this id")
		return
	}
	e, err := m.kinds.New(entry.kind, m.grid, at)
	if err != nil {
		m.skip(entry, err.Error())
		return
	}

	e.ID = entity.NewID("enemy")
	m.active = append(m.active, e)
	m.registry.AddEntity(e.ID, e)
	m.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyInfo{
		ID:   string(e.ID),
		Kind: e.Kind,
		X:    at.X,
		Z:    at.Z,
	}})
}

func (m *WaveManager) skip(entry spawnEntry, reason string) {
	m.spawnSkipped++
	log.Printf("Skipping spawn of %q at %q: %s", entry.kind, entry.pathID, reason)
	m.dispatcher.Dispatch(event.Event{Type: event.SpawnSkipped, Data: event.SpawnSkip{
		Kind:   entry.kind,
		PathID: entry.pathID,
		Reason: reason,
	}})
}

// pruneFinished drops dead, leaked and stalled enemies from tracking and from
// the registry.
func (m *WaveManager) pruneFinished() {
	kept := m.active[:0]
	for _, e := range m.active {
		if !e.Done() {
			kept = append(kept, e)
			continue
		}
		m.registry.RemoveEntity(e.ID)
		cell := e.Cell()
		m.dispatcher.Dispatch(event.Event{Type: event.EnemyRemoved, Data: event.EnemyInfo{
			ID:         string(e.ID),
			Kind:       e.Kind,
			X:          cell.X,
			Z:          cell.Z,
			ReachedEnd: e.ReachedEnd(),
			Killed:     e.IsDead(),
			Bounty:     e.Bounty(),
		}})
	}
	for i := len(kept); i < len(m.active); i++ {
		m.active[i] = nil
	}
	m.active = kept
}

func (m *WaveManager) complete() {
	m.setState(WaveCompleted)
	m.dispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: m.waveInfo()})

	m.completion = m.scheduler.After(config.WaveCompleteDelay, func() {
		m.completion = nil
		if m.state == WaveCompleted && m.HasMoreWaves() {
			m.setState(WaveWaiting)
		}
	})
}

func (m *WaveManager) setState(s WaveState) {
	m.state = s
	m.presenter.SetWaveState(s)
	m.dispatcher.Dispatch(event.Event{Type: event.WaveStateChanged, Data: m.waveInfo()})
}

func (m *WaveManager) waveInfo() event.WaveInfo {
	return event.WaveInfo{Index: m.currentWave, State: m.state.String()}
}

// Progress returns how many of the wave's enemies are no longer queued or on
// the board, and the wave total.
func (m *WaveManager) Progress() (current, total int) {
	return m.totalInWave - (len(m.queue) + len(m.active)), m.totalInWave
}

// HasMoreWaves reports whether a wave after the current one exists.
func (m *WaveManager) HasMoreWaves() bool {
	return m.currentWave < len(m.waves)-1
}

func (m *WaveManager) State() WaveState      { return m.state }
func (m *WaveManager) CurrentWaveIndex() int { return m.currentWave }
func (m *WaveManager) QueueLength() int      { return len(m.queue) }
func (m *WaveManager) ActiveCount() int      { return len(m.active) }
func (m *WaveManager) WaveCount() int        { return len(m.waves) }
func (m *WaveManager) SkippedSpawns() int    { return m.spawnSkipped }

// Waves returns the loaded wave list.
func (m *WaveManager) Waves() []defs.WaveData {
	return m.waves
}

// ActiveEnemies returns the tracked enemies in spawn order.
func (m *WaveManager) ActiveEnemies() []*enemy.Enemy {
	return append([]*enemy.Enemy(nil), m.active...)
}

// CompletionPending reports whether the delayed return to WAITING is scheduled.
func (m *WaveManager) CompletionPending() bool {
	return m.completion.Pending()
}
