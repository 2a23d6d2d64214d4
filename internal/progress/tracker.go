package progress

import "time"

// ringSize is how many speed samples are retained, oldest overwritten first.
const ringSize = 10

type sample struct {
	unixSec int64
	bytes   int64
}

// Tracker estimates download speed and ETA from a fixed ring of
// {second, cumulative bytes} samples. At most one sample is recorded per
// wall-clock second. Not safe for concurrent use; a download drives it from
// the single interactive loop.
type Tracker struct {
	ring  [ringSize]sample
	count int
	next  int

	downloaded int64
	total      int64
	stage      string
	start      time.Time

	now func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		start: time.Now(),
		now:   time.Now,
	}
}

func (t *Tracker) SetStage(stage string) {
	t.stage = stage
}

// Update records the current counters and appends a ring sample unless one
// was already recorded in this wall-clock second.
func (t *Tracker) Update(downloaded, total int64) {
	t.downloaded = downloaded
	t.total = total

	sec := t.now().Unix()
	if t.count > 0 && t.newest().unixSec == sec {
		return
	}
	t.ring[t.next] = sample{unixSec: sec, bytes: downloaded}
	t.next = (t.next + 1) % ringSize
	if t.count < ringSize {
		t.count++
	}
}

func (t *Tracker) newest() sample {
	return t.ring[(t.next-1+ringSize)%ringSize]
}

func (t *Tracker) oldest() sample {
	if t.count == ringSize {
		return t.ring[t.next]
	}
	return t.ring[0]
}

// Speed returns bytes per second computed between the oldest and newest
// recorded samples, or 0 when fewer than two distinct-timestamp samples
// exist or the byte delta is not positive. Never negative.
func (t *Tracker) Speed() float64 {
	if t.count < 2 {
		return 0
	}
	newest, oldest := t.newest(), t.oldest()
	elapsed := newest.unixSec - oldest.unixSec
	if elapsed <= 0 {
		return 0
	}
	delta := newest.bytes - oldest.bytes
	if delta <= 0 {
		return 0
	}
	return float64(delta) / float64(elapsed)
}

// ETA projects the completion time from the current speed. The second
// return is false when no estimate is possible.
func (t *Tracker) ETA() (time.Time, bool) {
	speed := t.Speed()
	if speed <= 0 || t.total <= t.downloaded {
		return time.Time{}, false
	}
	remaining := float64(t.total-t.downloaded) / speed
	return t.now().Add(time.Duration(remaining * float64(time.Second))), true
}

// Snapshot is an immutable view of the tracker for rendering.
type Snapshot struct {
	Downloaded int64
	Total      int64
	Speed      float64
	ETA        time.Time
	HasETA     bool
	Stage      string
	Start      time.Time
}

func (t *Tracker) Snapshot() Snapshot {
	eta, hasETA := t.ETA()
	return Snapshot{
		Downloaded: t.downloaded,
		Total:      t.total,
		Speed:      t.Speed(),
		ETA:        eta,
		HasETA:     hasETA,
		Stage:      t.stage,
		Start:      t.start,
	}
}

// Percent is the completed share in [0, 100]; 0 when the total is unknown.
func (s Snapshot) Percent() float64 {
	if s.Total <= 0 {
		return 0
	}
	pct := float64(s.Downloaded) / float64(s.Total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
