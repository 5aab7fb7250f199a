package vulkan

import (
	"encoding/binary"
	"time"

	vk "github.com/vulkan-go/vulkan"

	"github.com/vrxkit/gfxbridge"
)

// timerQueryCount is the query pool size: one slot for the start
// timestamp and one for the stop timestamp.
const timerQueryCount = 2

// GPUTimer measures GPU execution time by writing timestamps into a
// query pool from the caller's command buffer. It satisfies the
// gfxbridge.Timer contract so the submission pipeline can treat GPU and
// CPU timing uniformly.
//
// Start and Stop record commands; the measured interval is the GPU-side
// time between the two timestamps, read back by Query once the command
// buffer has executed. The pool holds a single start/stop pair, so each
// pair must be queried before the next one is recorded.
//
// When the device lacks the timestamp entry points the timer is inert:
// Start and Stop do nothing and Query reports 0. Absence of the
// capability is degraded, not fatal.
type GPUTimer struct {
	d      *Dispatch
	device vk.Device
	cmd    vk.CommandBuffer
	pool   vk.QueryPool

	// period is the duration of one timestamp tick in nanoseconds,
	// from the physical device limits.
	period float64

	total time.Duration
	armed bool
	inert bool
}

// NewGPUTimer creates a GPU timestamp timer recording into cmd.
// timestampPeriod is the device's nanoseconds-per-tick value from
// vk.PhysicalDeviceLimits.
//
// A device without the required query entry points yields an inert
// timer (logged once at warn level). A failing native call during pool
// creation is returned as a *gfxbridge.NativeCallError.
func NewGPUTimer(d *Dispatch, device vk.Device, cmd vk.CommandBuffer, timestampPeriod float32) (*GPUTimer, error) {
	t := &GPUTimer{
		d:      d,
		device: device,
		cmd:    cmd,
		period: float64(timestampPeriod),
	}

	if d == nil || !d.SupportsTimestamps() {
		gfxbridge.Logger().Warn("vulkan: timestamp queries unavailable, GPU timer is inert")
		t.inert = true
		return t, nil
	}

	info := vk.QueryPoolCreateInfo{
		SType:      vk.StructureTypeQueryPoolCreateInfo,
		QueryType:  vk.QueryTypeTimestamp,
		QueryCount: timerQueryCount,
	}
	if err := Check(d.CreateQueryPool(device, &info, &t.pool), "vkCreateQueryPool"); err != nil {
		return nil, err
	}
	return t, nil
}

// Start resets the pool and records the start timestamp at the top of
// the pipe.
func (t *GPUTimer) Start() {
	if t.inert {
		return
	}
	t.d.CmdResetQueryPool(t.cmd, t.pool, 0, timerQueryCount)
	t.d.CmdWriteTimestamp(t.cmd, vk.PipelineStageTopOfPipeBit, t.pool, 0)
}

// Stop records the stop timestamp at the bottom of the pipe.
func (t *GPUTimer) Stop() {
	if t.inert {
		return
	}
	t.d.CmdWriteTimestamp(t.cmd, vk.PipelineStageBottomOfPipeBit, t.pool, 1)
	t.armed = true
}

// Query reads back the recorded pair, accumulates the GPU interval, and
// returns the total at microsecond resolution. When reset is true the
// accumulator is zeroed as an explicit side effect of the read. A pair
// whose results are not yet available contributes nothing.
func (t *GPUTimer) Query(reset bool) time.Duration {
	if t.inert {
		return 0
	}
	if t.armed {
		var data [timerQueryCount * 8]byte
		res := t.d.GetQueryPoolResults(t.device, t.pool, 0, timerQueryCount,
			data[:], 8, vk.QueryResultFlags(vk.QueryResult64Bit))
		if res == vk.Success {
			start := binary.LittleEndian.Uint64(data[0:8])
			stop := binary.LittleEndian.Uint64(data[8:16])
			if stop > start {
				t.total += time.Duration(float64(stop-start) * t.period)
			}
			t.armed = false
		}
	}

	d := t.total.Truncate(time.Microsecond)
	if reset {
		t.total = 0
	}
	return d
}

// Destroy releases the query pool. The timer must not be used after
// Destroy.
func (t *GPUTimer) Destroy() {
	if t.inert || t.d.DestroyQueryPool == nil {
		return
	}
	t.d.DestroyQueryPool(t.device, t.pool)
}

var _ gfxbridge.Timer = (*GPUTimer)(nil)
