// Package translator orchestrates text and voice translation with
// opportunistic speech pre-fetch.
package translator

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tripmate/internal/client"
	"tripmate/internal/logging"
	"tripmate/internal/request"
	"tripmate/internal/speech"
)

// Languages is the fixed target-language choice list.
var Languages = []string{
	"Spanish", "French", "German", "Italian", "Japanese",
	"Chinese", "Korean", "Russian", "Portuguese", "Arabic",
}

const (
	errTranslateFailed = "Sorry, translation failed. Please try again."
	errSpeakFailed     = "Could not play audio."
	errVoiceTranslate  = "Could not translate the speech."
	errNoSpeechSupport = "Speech recognition is not supported on this system."
)

// Player is the audio output contract: Play starts playback of raw
// 24 kHz mono PCM and reports whether it started; onDone fires when
// the samples finish.
type Player interface {
	Play(pcm []byte, onDone func()) bool
}

// Mode selects between typed and spoken input.
type Mode string

const (
	ModeText  Mode = "text"
	ModeVoice Mode = "voice"
)

// State is the observable translator state.
type State struct {
	Mode           Mode
	TargetLanguage string
	Style          request.Style

	// Text mode
	TranslatedText string
	Loading        bool
	Err            string
	Speaking       bool
	AudioCached    bool // pre-fetched audio is valid for TranslatedText

	// Voice mode
	SpeechSupported bool
	Listening       bool
	Transcript      string
	VoiceTranslated string
	SpeechErr       string
}

// Controller drives both translation modes. The pre-fetched audio
// buffer is valid only while the displayed translated text is
// unchanged; any new translation clears it.
type Controller struct {
	SessionID string

	provider   client.Client
	player     Player
	recognizer speech.Recognizer
	notify     func()

	mu       sync.Mutex
	state    State
	audio    []byte // cached synthesized speech
	audioFor string // exact text the cached audio was synthesized from
	voiceCtx context.Context
}

// NewController creates a translator controller. The recognizer is
// attached afterwards via SetRecognizer so its event callback can close
// over the controller.
func NewController(provider client.Client, player Player, notify func()) *Controller {
	if notify == nil {
		notify = func() {}
	}
	return &Controller{
		SessionID: uuid.NewString(),
		provider:  provider,
		player:    player,
		notify:    notify,
		state: State{
			Mode:           ModeText,
			TargetLanguage: Languages[0],
			Style:          request.StyleFormal,
		},
	}
}

// SetRecognizer attaches the speech capability. A nil or unsupported
// recognizer leaves voice mode in its degraded, clearly-flagged state.
func (c *Controller) SetRecognizer(r speech.Recognizer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recognizer = r
	c.state.SpeechSupported = r != nil && r.Supported()
	if !c.state.SpeechSupported {
		c.state.SpeechErr = errNoSpeechSupport
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetMode switches between text and voice input.
func (c *Controller) SetMode(mode Mode) {
	c.mu.Lock()
	c.state.Mode = mode
	c.mu.Unlock()
	c.notify()
}

// SetTargetLanguage selects the translation target.
func (c *Controller) SetTargetLanguage(lang string) {
	c.mu.Lock()
	c.state.TargetLanguage = lang
	c.mu.Unlock()
	c.notify()
}

// SetStyle selects the translation tone.
func (c *Controller) SetStyle(style request.Style) {
	c.mu.Lock()
	c.state.Style = style
	c.mu.Unlock()
	c.notify()
}

// Translate translates typed text. No-op while a translation is in
// flight. Returns whether a request was started.
func (c *Controller) Translate(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return false
	}
	c.state.Loading = true
	c.state.Err = ""
	c.state.TranslatedText = ""
	// Invalidate the audio cache up front: it was synthesized for the
	// previous translation.
	c.audio = nil
	c.audioFor = ""
	c.state.AudioCached = false
	lang, style := c.state.TargetLanguage, c.state.Style
	c.mu.Unlock()
	c.notify()

	go c.translateText(ctx, text, lang, style)
	return true
}

func (c *Controller) translateText(ctx context.Context, text, lang string, style request.Style) {
	translated, err := c.provider.Translate(ctx, text, lang, style)

	c.mu.Lock()
	c.state.Loading = false
	if err != nil {
		logging.Warn("translation failed", "error", err)
		c.state.Err = errTranslateFailed
		c.mu.Unlock()
		c.notify()
		return
	}
	c.state.TranslatedText = translated
	c.mu.Unlock()
	c.notify()

	// Opportunistic pre-fetch, fire-and-forget relative to the result.
	if translated != "" {
		go c.prefetchAudio(ctx, translated)
	}
}

// prefetchAudio synthesizes speech for a fresh translation and caches
// it, but only while that translation is still the one on display.
func (c *Controller) prefetchAudio(ctx context.Context, text string) {
	pcm, err := c.provider.Synthesize(ctx, text)
	if err != nil {
		logging.Debug("audio pre-fetch failed", "error", err)
		return
	}

	c.mu.Lock()
	if c.state.TranslatedText == text {
		c.audio = pcm
		c.audioFor = text
		c.state.AudioCached = true
	}
	c.mu.Unlock()
	c.notify()
}

// Speak plays the given text. The cached buffer is used only when it
// was synthesized for exactly this text; otherwise speech is fetched on
// demand. No-op while already speaking.
func (c *Controller) Speak(ctx context.Context, text string) bool {
	if text == "" {
		return false
	}

	c.mu.Lock()
	if c.state.Speaking {
		c.mu.Unlock()
		return false
	}
	c.state.Speaking = true
	cached := c.audio
	cachedFor := c.audioFor
	c.mu.Unlock()
	c.notify()

	if cached != nil && cachedFor == text {
		if !c.player.Play(cached, c.speakDone) {
			c.speakDone()
		}
		return true
	}

	go c.fetchAndSpeak(ctx, text)
	return true
}

func (c *Controller) speakDone() {
	c.mu.Lock()
	c.state.Speaking = false
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) fetchAndSpeak(ctx context.Context, text string) {
	pcm, err := c.provider.Synthesize(ctx, text)
	if err != nil {
		logging.Warn("speech synthesis failed", "error", err)
		c.mu.Lock()
		c.state.Speaking = false
		c.state.Err = errSpeakFailed
		c.mu.Unlock()
		c.notify()
		return
	}

	c.mu.Lock()
	// Cache only when the fetched speech matches the displayed text.
	if c.state.TranslatedText == text {
		c.audio = pcm
		c.audioFor = text
		c.state.AudioCached = true
	}
	c.mu.Unlock()

	if !c.player.Play(pcm, c.speakDone) {
		c.speakDone()
	}
}
