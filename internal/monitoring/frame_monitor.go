package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameMonitor tracks render timing and sprite counters
type FrameMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Rendering metrics
	raycastTime   atomic.Uint64
	spritesDrawn  atomic.Int32
	spritesCulled atomic.Int32

	// Statistics
	mutex          sync.RWMutex
	avgFrameTime   float64 // nanoseconds, running mean
	totalFrameTime time.Duration
	startTime      time.Time
}

// NewFrameMonitor creates a new frame monitor
func NewFrameMonitor() *FrameMonitor {
	return &FrameMonitor{
		startTime: time.Now(),
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *FrameMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (fm *FrameMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   fm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	frameTime := time.Since(ft.startTime)
	ft.monitor.frameTime.Store(uint64(frameTime.Nanoseconds()))
	count := ft.monitor.frameCount.Add(1)

	ft.monitor.mutex.Lock()
	ft.monitor.totalFrameTime += frameTime
	ft.monitor.avgFrameTime = float64(ft.monitor.totalFrameTime.Nanoseconds()) / float64(count)
	ft.monitor.mutex.Unlock()
}

// RaycastTimer helps measure depth buffer construction
type RaycastTimer struct {
	monitor   *FrameMonitor
	startTime time.Time
}

// StartRaycast begins raycast timing
func (fm *FrameMonitor) StartRaycast() *RaycastTimer {
	return &RaycastTimer{
		monitor:   fm,
		startTime: time.Now(),
	}
}

// EndRaycast completes raycast timing
func (rt *RaycastTimer) EndRaycast() {
	rt.monitor.raycastTime.Store(uint64(time.Since(rt.startTime).Nanoseconds()))
}

// RecordSprites stores how many billboards the last frame drew and skipped.
func (fm *FrameMonitor) RecordSprites(drawn, culled int) {
	fm.spritesDrawn.Store(int32(drawn))
	fm.spritesCulled.Store(int32(culled))
}

// FrameStats is a point-in-time copy of the monitor's counters
type FrameStats struct {
	FrameCount       uint64
	LastFrameTime    time.Duration
	AverageFrameTime time.Duration
	LastRaycastTime  time.Duration
	SpritesDrawn     int
	SpritesCulled    int
	FramesPerSecond  float64
	Uptime           time.Duration
}

// Snapshot returns the current counters
func (fm *FrameMonitor) Snapshot() FrameStats {
	fm.mutex.RLock()
	defer fm.mutex.RUnlock()

	frameTime := fm.frameTime.Load()
	fps := 0.0
	if frameTime > 0 {
		fps = 1000000000.0 / float64(frameTime) // Convert nanoseconds to FPS
	}

	return FrameStats{
		FrameCount:       fm.frameCount.Load(),
		LastFrameTime:    time.Duration(frameTime),
		AverageFrameTime: time.Duration(fm.avgFrameTime),
		LastRaycastTime:  time.Duration(fm.raycastTime.Load()),
		SpritesDrawn:     int(fm.spritesDrawn.Load()),
		SpritesCulled:    int(fm.spritesCulled.Load()),
		FramesPerSecond:  fps,
		Uptime:           time.Since(fm.startTime),
	}
}

// Reset resets all counters
func (fm *FrameMonitor) Reset() {
	fm.frameCount.Store(0)
	fm.frameTime.Store(0)
	fm.raycastTime.Store(0)
	fm.spritesDrawn.Store(0)
	fm.spritesCulled.Store(0)

	fm.mutex.Lock()
	fm.avgFrameTime = 0
	fm.totalFrameTime = 0
	fm.startTime = time.Now()
	fm.mutex.Unlock()
}
