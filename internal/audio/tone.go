// Package audio 合成游戏音效
//
// 音效由若干段正弦音调拼接而成，不依赖外部音频文件。
// 合成结果为 16 位有符号小端、双声道交错的 PCM，可直接交给 ebiten 的 audio.Context 播放。
package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// Tone 一段音调
type Tone struct {
	Freq     float64       // 起始频率 (Hz)
	SlideTo  float64       // 结束频率 (Hz)，0 表示不滑音
	Duration time.Duration // 持续时间
	Volume   float64       // 0.0 ~ 1.0
}

// Effect 按顺序播放的一组音调
type Effect []Tone

// 音效ID
const (
	SoundFlap      = "flap"
	SoundHit       = "hit"
	SoundHighscore = "highscore"
)

// effects 内置音效
var effects = map[string]Effect{
	SoundFlap: {
		{Freq: 620, SlideTo: 900, Duration: 70 * time.Millisecond, Volume: 0.5},
	},
	SoundHit: {
		{Freq: 320, SlideTo: 110, Duration: 220 * time.Millisecond, Volume: 0.7},
	},
	SoundHighscore: {
		{Freq: 523.25, Duration: 90 * time.Millisecond, Volume: 0.5},
		{Freq: 659.25, Duration: 90 * time.Millisecond, Volume: 0.5},
		{Freq: 783.99, Duration: 180 * time.Millisecond, Volume: 0.5},
	},
}

// Lookup 按ID查找内置音效
func Lookup(id string) (Effect, bool) {
	e, ok := effects[id]
	return e, ok
}

// IDs 返回所有内置音效ID
func IDs() []string {
	return []string{SoundFlap, SoundHit, SoundHighscore}
}

// Duration 音效总时长
func (e Effect) Duration() time.Duration {
	var d time.Duration
	for _, t := range e {
		d += t.Duration
	}
	return d
}

// fadeSamples 每段音调首尾的淡入淡出长度，避免爆音
const fadeSamples = 64

// SynthesizePCM 把音效合成为 16 位小端双声道 PCM
//
// 参数:
//   - sampleRate: 采样率 (Hz)
//   - e: 音效
//
// 返回:
//   - []byte: PCM 数据，长度为 采样数 * 4
func SynthesizePCM(sampleRate int, e Effect) []byte {
	total := 0
	for _, t := range e {
		total += samplesFor(sampleRate, t.Duration)
	}

	out := make([]byte, 0, total*4)
	var frame [4]byte
	for _, t := range e {
		n := samplesFor(sampleRate, t.Duration)
		phase := 0.0
		for i := 0; i < n; i++ {
			freq := t.Freq
			if t.SlideTo > 0 && n > 1 {
				freq += (t.SlideTo - t.Freq) * float64(i) / float64(n-1)
			}

			v := math.Sin(2*math.Pi*phase) * clamp01(t.Volume) * envelope(i, n)
			phase += freq / float64(sampleRate)
			phase -= math.Floor(phase)

			s := uint16(int16(v * math.MaxInt16))
			binary.LittleEndian.PutUint16(frame[0:], s)
			binary.LittleEndian.PutUint16(frame[2:], s)
			out = append(out, frame[:]...)
		}
	}
	return out
}

func samplesFor(sampleRate int, d time.Duration) int {
	if d <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(int64(sampleRate) * int64(d) / int64(time.Second))
}

// envelope 线性淡入淡出
func envelope(i, n int) float64 {
	fade := fadeSamples
	if n < 2*fade {
		fade = n / 2
	}
	if fade == 0 {
		return 1
	}
	switch {
	case i < fade:
		return float64(i) / float64(fade)
	case i >= n-fade:
		return float64(n-1-i) / float64(fade)
	default:
		return 1
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
