package media

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"tripmate/internal/logging"
)

// Synthesized speech arrives as raw PCM at a fixed rate.
const (
	sampleRate   = 24000
	channelCount = 1
)

// Player owns the process-wide audio output context. The context is
// created lazily on first playback and reused for every one after; at
// most one playback runs at a time and Play while speaking is a no-op.
type Player struct {
	mu       sync.Mutex
	once     sync.Once
	ctx      *oto.Context
	ready    chan struct{}
	initErr  error
	speaking bool
}

// NewPlayer creates a player. No audio resources are acquired until the
// first Play.
func NewPlayer() *Player {
	return &Player{}
}

func (p *Player) init() {
	p.once.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			logging.Error("audio context creation failed", "error", err)
			p.initErr = err
			return
		}
		p.ctx = ctx
		p.ready = ready
	})
}

// Speaking reports whether a playback is in progress.
func (p *Player) Speaking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speaking
}

// Play starts playback of raw 24 kHz mono PCM samples and reports
// whether playback started. onDone fires when the samples finish (or
// playback failed); it is never called when Play returns false.
func (p *Player) Play(pcm []byte, onDone func()) bool {
	if len(pcm) == 0 {
		return false
	}
	if onDone == nil {
		onDone = func() {}
	}

	p.init()
	if p.initErr != nil {
		return false
	}

	p.mu.Lock()
	if p.speaking {
		p.mu.Unlock()
		return false
	}
	p.speaking = true
	p.mu.Unlock()

	go func() {
		defer func() {
			p.mu.Lock()
			p.speaking = false
			p.mu.Unlock()
			onDone()
		}()

		<-p.ready
		player := p.ctx.NewPlayer(bytes.NewReader(pcm))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			logging.Warn("audio player close failed", "error", err)
		}
	}()
	return true
}
