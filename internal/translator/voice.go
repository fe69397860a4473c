package translator

import (
	"context"
	"fmt"

	"tripmate/internal/speech"
)

// ToggleListening starts or stops a voice session. Starting clears the
// previous transcript and result; stopping lets the recognizer flush
// its single final transcript, which then drives a translation.
func (c *Controller) ToggleListening(ctx context.Context) {
	c.mu.Lock()
	r := c.recognizer
	supported := c.state.SpeechSupported
	listening := c.state.Listening
	c.mu.Unlock()

	if !supported || r == nil {
		return
	}

	if listening {
		r.Stop()
		return
	}

	c.mu.Lock()
	c.state.Transcript = ""
	c.state.VoiceTranslated = ""
	c.state.SpeechErr = ""
	c.voiceCtx = ctx
	c.mu.Unlock()
	c.notify()

	if err := r.Start(ctx); err != nil {
		// ErrBusy means the previous session hasn't wound down yet;
		// the toggle simply has no effect.
		if err != speech.ErrBusy {
			c.mu.Lock()
			c.state.SpeechErr = fmt.Sprintf("Speech error: %v", err)
			c.mu.Unlock()
			c.notify()
		}
	}
}

// HandleSpeechEvent drives the voice state machine from recognizer
// events: Idle -> Listening -> {Result | Error} -> Idle.
func (c *Controller) HandleSpeechEvent(ev speech.Event) {
	switch ev.Kind {
	case speech.EventStart:
		c.mu.Lock()
		c.state.Listening = true
		c.mu.Unlock()
		c.notify()

	case speech.EventError:
		c.mu.Lock()
		c.state.Listening = false
		c.state.SpeechErr = fmt.Sprintf("Speech error: %v", ev.Err)
		c.mu.Unlock()
		c.notify()

	case speech.EventResult:
		c.mu.Lock()
		c.state.Listening = false
		c.state.Transcript = ev.Transcript
		ctx := c.voiceCtx
		c.mu.Unlock()
		c.notify()

		if ctx == nil {
			ctx = context.Background()
		}
		go c.voiceTranslate(ctx, ev.Transcript)
	}
}

// voiceTranslate translates a final transcript and speaks the result.
func (c *Controller) voiceTranslate(ctx context.Context, text string) {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return
	}
	c.state.Loading = true
	lang, style := c.state.TargetLanguage, c.state.Style
	c.mu.Unlock()
	c.notify()

	translated, err := c.provider.Translate(ctx, text, lang, style)

	c.mu.Lock()
	c.state.Loading = false
	if err != nil {
		c.state.SpeechErr = errVoiceTranslate
		c.mu.Unlock()
		c.notify()
		return
	}
	c.state.VoiceTranslated = translated
	c.mu.Unlock()
	c.notify()

	c.Speak(ctx, translated)
}
