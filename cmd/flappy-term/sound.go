package main

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	flappyaudio "github.com/decker502/flappy/internal/audio"
)

const sampleRate = beep.SampleRate(44100)

// soundPlayer 通过扬声器播放音效；初始化失败时静默
type soundPlayer struct {
	enabled bool
	ready   bool
}

func newSoundPlayer(enabled bool) *soundPlayer {
	sp := &soundPlayer{enabled: enabled}
	if !enabled {
		return sp
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// 没有声音也能玩
		log.Printf("[Term] Audio initialization failed: %v", err)
		return sp
	}
	sp.ready = true
	return sp
}

// Toggle 切换静音
func (sp *soundPlayer) Toggle() bool {
	sp.enabled = !sp.enabled
	return sp.enabled
}

// Play 播放指定ID的音效
func (sp *soundPlayer) Play(id string) {
	if !sp.ready || !sp.enabled {
		return
	}
	effect, ok := flappyaudio.Lookup(id)
	if !ok {
		return
	}
	if s := effectStreamer(effect); s != nil {
		speaker.Play(s)
	}
}

func (sp *soundPlayer) Close() {
	if sp.ready {
		speaker.Close()
	}
}

// effectStreamer 把音效转换为 beep 流；滑音在终端里简化为起始频率
func effectStreamer(effect flappyaudio.Effect) beep.Streamer {
	var parts []beep.Streamer
	for _, t := range effect {
		sine, err := generators.SineTone(sampleRate, t.Freq)
		if err != nil {
			log.Printf("[Term] Warning: invalid tone %.1fHz: %v", t.Freq, err)
			continue
		}
		parts = append(parts, withVolume(beep.Take(sampleRate.N(t.Duration), sine), t.Volume))
	}
	if len(parts) == 0 {
		return nil
	}
	return beep.Seq(parts...)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
