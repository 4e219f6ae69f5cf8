package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// SoundID 音效标识
type SoundID string

const (
	SoundApple       SoundID = "apple"
	SoundBonus       SoundID = "bonus"
	SoundBonusAppear SoundID = "bonus_appear"
	SoundGameOver    SoundID = "game_over"
)

// ToneSpec 合成音效的参数：依次播放的音符频率（Hz）和每个音符的时长（秒）
type ToneSpec struct {
	Notes        []float64
	NoteDuration float64
}

// SoundTones 各音效的音符定义，终端版也使用同一份定义
var SoundTones = map[SoundID]ToneSpec{
	SoundApple:       {Notes: []float64{880}, NoteDuration: 0.06},
	SoundBonus:       {Notes: []float64{660, 880, 1320}, NoteDuration: 0.07},
	SoundBonusAppear: {Notes: []float64{1320}, NoteDuration: 0.04},
	SoundGameOver:    {Notes: []float64{440, 330, 220}, NoteDuration: 0.18},
}

// SoundForEvent 返回会话事件对应的音效
func SoundForEvent(event SessionEvent) (SoundID, bool) {
	switch event {
	case EventAppleEaten:
		return SoundApple, true
	case EventBonusEaten:
		return SoundBonus, true
	case EventBonusAppeared:
		return SoundBonusAppear, true
	case EventGameOver:
		return SoundGameOver, true
	}
	return "", false
}

// AudioManager 音效管理器
//
// 音效在首次播放时合成为 16 位立体声 PCM 并缓存播放器；
// audio 上下文为 nil 时所有播放请求都被忽略
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager // 可为 nil
	players         map[SoundID]*audio.Player
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音模式）
//   - sm: SettingsManager 实例（读取音效开关和音量，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[SoundID]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放（音效关闭、静音模式或未知音效时返回 false）
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getPlayer(id)
	if player == nil {
		return false
	}

	player.SetVolume(am.soundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	return true
}

// OnSessionEvent 实现 SessionListener，把会话事件转换为音效
func (am *AudioManager) OnSessionEvent(event SessionEvent, _ *Session) {
	if id, ok := SoundForEvent(event); ok {
		am.PlaySound(id)
	}
}

func (am *AudioManager) getPlayer(id SoundID) *audio.Player {
	if player, ok := am.players[id]; ok {
		return player
	}
	spec, ok := SoundTones[id]
	if !ok {
		log.Printf("[AudioManager] Warning: Unknown sound %q", id)
		return nil
	}

	pcm := SynthesizeTone(am.context.SampleRate(), spec)
	player := am.context.NewPlayerFromBytes(pcm)
	am.players[id] = player
	return player
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}

// SynthesizeTone 把音符序列合成为 16 位小端立体声 PCM
//
// 每个音符是带线性淡入淡出的方波，避免爆音
func SynthesizeTone(sampleRate int, spec ToneSpec) []byte {
	perNote := int(float64(sampleRate) * spec.NoteDuration)
	fade := perNote / 10
	out := make([]byte, 0, perNote*len(spec.Notes)*4)

	for _, freq := range spec.Notes {
		for i := 0; i < perNote; i++ {
			phase := math.Mod(float64(i)*freq/float64(sampleRate), 1)
			v := 0.25
			if phase >= 0.5 {
				v = -0.25
			}
			if fade > 0 {
				switch {
				case i < fade:
					v *= float64(i) / float64(fade)
				case i >= perNote-fade:
					v *= float64(perNote-1-i) / float64(fade)
				}
			}
			sample := uint16(int16(v * math.MaxInt16))
			out = binary.LittleEndian.AppendUint16(out, sample)
			out = binary.LittleEndian.AppendUint16(out, sample)
		}
	}
	return out
}
