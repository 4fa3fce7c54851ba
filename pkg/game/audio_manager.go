package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	flappyaudio "github.com/decker502/flappy/internal/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 合成并缓存音效播放器（拍翅、碰撞、新纪录）
//   - 播放前读取 SettingsManager 中的开关与音量
//
// audioContext 为 nil 时（无音频设备、测试环境）所有播放请求都被忽略。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	soundPlayers    map[string]*audio.Player
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil
//   - sm: 设置管理器，可为 nil（使用默认音量）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// Enabled 当前是否会发声
func (am *AudioManager) Enabled() bool {
	if am.audioContext == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}
	return true
}

// PlaySound 播放音效
//
// 参数：
//   - soundID: 音效ID（flappyaudio.SoundFlap 等）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.Enabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// OnTick 根据一帧的结果播放对应音效
func (am *AudioManager) OnTick(result TickResult) {
	if !result.Ended {
		return
	}
	if result.Run != nil && result.Run.NewHighScore {
		am.PlaySound(flappyaudio.SoundHighscore)
		return
	}
	am.PlaySound(flappyaudio.SoundHit)
}

// PreloadSounds 预先合成全部音效，避免首次播放时卡顿
func (am *AudioManager) PreloadSounds() {
	if am.audioContext == nil {
		return
	}
	for _, id := range flappyaudio.IDs() {
		am.getSoundPlayer(id)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	effect, ok := flappyaudio.Lookup(soundID)
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	pcm := flappyaudio.SynthesizePCM(am.audioContext.SampleRate(), effect)
	player := am.audioContext.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
