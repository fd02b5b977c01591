package alarm

import "segclock/internal/domain"

// Audio parameters for synthesized alarm tones.
const (
	SampleRate   = 44100
	ChannelCount = 1
	BitDepth     = 16
)

// note is one step of an alarm motif. A zero frequency is a rest.
type note struct {
	freq float64
	ms   int
}

// motifs holds one short looping motif per alarm sound. The original
// widget shipped a WAV per theme; synthesizing a distinctive tone keeps
// the per-theme alarm identity without binary assets.
var motifs = map[domain.SoundID][]note{
	"standard": {{880, 150}, {0, 80}, {880, 150}, {0, 400}},
	"ocean":    {{392, 300}, {0, 200}, {523, 300}, {0, 500}},
	"playful":  {{659, 120}, {784, 120}, {880, 120}, {0, 300}},
	"regal":    {{523, 250}, {659, 250}, {0, 350}},
	"striking": {{1175, 100}, {0, 60}, {1175, 100}, {0, 60}, {1175, 100}, {0, 500}},
}

// motifFor returns the motif for a sound, falling back to the standard
// beep for unknown identifiers.
func motifFor(sound domain.SoundID) []note {
	if m, ok := motifs[sound]; ok {
		return m
	}
	return motifs["standard"]
}

// synthesize renders a motif as signed 16-bit little-endian mono PCM.
// Notes are square waves at a quarter of full scale.
func synthesize(m []note) []byte {
	const amplitude = 32767 / 4

	var out []byte
	for _, n := range m {
		samples := SampleRate * n.ms / 1000
		if n.freq <= 0 {
			out = append(out, make([]byte, samples*2)...)
			continue
		}
		halfPeriod := int(SampleRate / (2 * n.freq))
		if halfPeriod < 1 {
			halfPeriod = 1
		}
		for i := 0; i < samples; i++ {
			v := int16(amplitude)
			if (i/halfPeriod)%2 == 1 {
				v = -amplitude
			}
			out = append(out, byte(v), byte(v>>8))
		}
	}
	return out
}

// loopReader replays a PCM buffer forever. It never returns io.EOF, so
// an oto player fed from it loops until paused.
type loopReader struct {
	data []byte
	pos  int
}

func newLoopReader(data []byte) *loopReader {
	return &loopReader{data: data}
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		// Degenerate motif: feed silence.
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}
	n := 0
	for n < len(p) {
		c := copy(p[n:], r.data[r.pos:])
		n += c
		r.pos += c
		if r.pos >= len(r.data) {
			r.pos = 0
		}
	}
	return n, nil
}
