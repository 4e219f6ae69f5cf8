package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/snake/pkg/types"
)

// 窗口尺寸常量（逻辑分辨率，Ebitengine 负责缩放）
const (
	GameWindowWidth  = 406
	GameWindowHeight = 680
)

// GameConfig 游戏配置
//
// 时间相关字段以 tick 为单位，实际秒数 = tick 数 × TickInterval。
//
// 配置文件位置: data/config.yaml
type GameConfig struct {
	// Columns 网格列数
	Columns int `yaml:"columns"`
	// Rows 网格行数
	Rows int `yaml:"rows"`
	// TickInterval 蛇每移动一格的间隔（秒）
	TickInterval float64 `yaml:"tickInterval"`

	// Start 蛇尾初始坐标，蛇身从这里向上延伸
	Start PointConfig `yaml:"start"`
	// InitialLength 初始长度
	InitialLength int `yaml:"initialLength"`

	// ApplePoints 吃苹果得分
	ApplePoints int `yaml:"applePoints"`
	// Bonus 奖励果实配置
	Bonus BonusConfig `yaml:"bonus"`

	// DeathBlinkCount 死亡时蛇身闪烁次数
	DeathBlinkCount int `yaml:"deathBlinkCount"`
	// DeathBlinkTicks 死亡闪烁半周期（tick）
	DeathBlinkTicks float64 `yaml:"deathBlinkTicks"`

	// Margin 网格边距（像素）
	Margin float64 `yaml:"margin"`
	// WindowTitle 窗口标题
	WindowTitle string `yaml:"windowTitle"`
}

// PointConfig 网格坐标
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Vec 转换为网格坐标
func (p PointConfig) Vec() types.Vector2i {
	return types.Vec(p.X, p.Y)
}

// BonusConfig 奖励果实的出现与闪烁节奏
type BonusConfig struct {
	// Points 吃奖励果实得分
	Points int `yaml:"points"`
	// MinDelayTicks 放置前的最短等待（tick）
	MinDelayTicks float64 `yaml:"minDelayTicks"`
	// MaxDelayTicks 放置前的最长等待（tick）
	MaxDelayTicks float64 `yaml:"maxDelayTicks"`
	// VisibleTicks 放置后开始闪烁前的停留时间（tick）
	VisibleTicks float64 `yaml:"visibleTicks"`
	// BlinkCount 消失前闪烁次数
	BlinkCount int `yaml:"blinkCount"`
	// BlinkTicks 闪烁半周期（tick）
	BlinkTicks float64 `yaml:"blinkTicks"`
}

// DefaultGameConfig 返回与原版一致的默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Columns:       10,
		Rows:          15,
		TickInterval:  0.15,
		Start:         PointConfig{X: 5, Y: 13},
		InitialLength: 5,
		ApplePoints:   1,
		Bonus: BonusConfig{
			Points:        10,
			MinDelayTicks: 20,
			MaxDelayTicks: 40,
			VisibleTicks:  16,
			BlinkCount:    5,
			BlinkTicks:    1.5,
		},
		DeathBlinkCount: 3,
		DeathBlinkTicks: 1.5,
		Margin:          3,
		WindowTitle:     "Snake",
	}
}

// LoadGameConfig 加载游戏配置
//
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/config.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 从 YAML 数据解析配置（覆盖默认值）
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 网格尺寸为正
//   - tick 间隔为正
//   - 初始蛇身完全位于网格内
//   - 奖励果实延迟区间合法
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Columns <= 0 || c.Rows <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive: columns=%d, rows=%d", c.Columns, c.Rows))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tickInterval must be positive, got %v", c.TickInterval))
	}
	if c.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("initialLength must be >= 1, got %d", c.InitialLength))
	}
	if c.Start.X < 0 || c.Start.X >= c.Columns || c.Start.Y >= c.Rows || c.Start.Y-(c.InitialLength-1) < 0 {
		errs = append(errs, fmt.Errorf("initial snake from (%d,%d) with length %d does not fit the %dx%d board",
			c.Start.X, c.Start.Y, c.InitialLength, c.Columns, c.Rows))
	}
	if c.Bonus.MinDelayTicks < 0 || c.Bonus.MaxDelayTicks < c.Bonus.MinDelayTicks {
		errs = append(errs, fmt.Errorf("bonus delay range invalid: min(%.1f) max(%.1f)",
			c.Bonus.MinDelayTicks, c.Bonus.MaxDelayTicks))
	}
	if c.Bonus.BlinkCount < 0 || c.DeathBlinkCount < 0 {
		errs = append(errs, errors.New("blink counts must not be negative"))
	}
	return errors.Join(errs...)
}

// Ticks 把 tick 数换算成秒
func (c *GameConfig) Ticks(n float64) float64 {
	return n * c.TickInterval
}
