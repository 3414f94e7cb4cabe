package components

import (
	"encoding/binary"
	stdmath "math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Sample is one recorded goal position.
type Sample struct {
	At   time.Duration
	Goal math.Vec2
}

// Tape is a captured hand performance: goal samples and grab edge times,
// both in chronological insertion order.
type Tape struct {
	ID      uuid.UUID
	Samples []Sample
	Grabs   []time.Duration
}

// Clone returns a deep copy sharing no backing arrays with t.
func (t *Tape) Clone() Tape {
	return Tape{
		ID:      t.ID,
		Samples: append([]Sample(nil), t.Samples...),
		Grabs:   append([]time.Duration(nil), t.Grabs...),
	}
}

// Checksum hashes the tape contents (not its id).
func (t *Tape) Checksum() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 24)
	for _, s := range t.Samples {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(s.At))
		buf = binary.LittleEndian.AppendUint64(buf, stdmath.Float64bits(s.Goal.X))
		buf = binary.LittleEndian.AppendUint64(buf, stdmath.Float64bits(s.Goal.Y))
		_, _ = d.Write(buf)
	}
	for _, g := range t.Grabs {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(g))
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

// RecordingData is present on a hand while it captures a tape.
type RecordingData struct {
	Timer Timer
	Tape  Tape
}

var Recording = donburi.NewComponentType[RecordingData]()

// PlaybackData drives a ghost hand from a tape. Template is never modified;
// Positions and Grabs are the entries still due in the current loop.
type PlaybackData struct {
	Timer     Timer
	Template  Tape
	Positions []Sample
	Grabs     []time.Duration
	Loops     int
}

// Rewind refills the working queues from the template.
func (p *PlaybackData) Rewind() {
	p.Positions = append(make([]Sample, 0, len(p.Template.Samples)), p.Template.Samples...)
	p.Grabs = append(make([]time.Duration, 0, len(p.Template.Grabs)), p.Template.Grabs...)
}

var Playback = donburi.NewComponentType[PlaybackData]()
