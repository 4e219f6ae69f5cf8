package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/snake/pkg/game"
)

const sampleRate = beep.SampleRate(game.AudioSampleRate)

// beepSound 通过扬声器播放会话事件音效
type beepSound struct {
	volume float64 // effects.Volume 的指数，以 2 为底
}

// newBeepSound 初始化扬声器
func newBeepSound() (*beepSound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &beepSound{volume: -2}, nil
}

// OnSessionEvent 实现 game.SessionListener
func (b *beepSound) OnSessionEvent(event game.SessionEvent, _ *game.Session) {
	id, ok := game.SoundForEvent(event)
	if !ok {
		return
	}
	s, err := toneStreamer(sampleRate, game.SoundTones[id])
	if err != nil {
		log.Printf("[Sound] Failed to build tone %s: %v", id, err)
		return
	}
	speaker.Play(&effects.Volume{Streamer: s, Base: 2, Volume: b.volume})
}

func (b *beepSound) Close() {
	speaker.Close()
}

// toneStreamer 把音符序列拼接为正弦波流
func toneStreamer(sr beep.SampleRate, spec game.ToneSpec) (beep.Streamer, error) {
	noteLen := sr.N(time.Duration(spec.NoteDuration * float64(time.Second)))
	notes := make([]beep.Streamer, 0, len(spec.Notes))
	for _, freq := range spec.Notes {
		sine, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, err
		}
		notes = append(notes, beep.Take(noteLen, sine))
	}
	return beep.Seq(notes...), nil
}
