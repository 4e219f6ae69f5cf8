package game

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/gonewx/snake/pkg/board"
	"github.com/gonewx/snake/pkg/components"
	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/ecs"
	"github.com/gonewx/snake/pkg/snake"
	"github.com/gonewx/snake/pkg/systems"
	"github.com/gonewx/snake/pkg/types"
	"github.com/gonewx/snake/pkg/utils"
)

// SessionState 会话状态
type SessionState int

const (
	StateMenu     SessionState = iota // 等待开始
	StatePlaying                      // 游戏中
	StatePaused                       // 暂停（节拍和序列都停止）
	StateDying                        // 撞击后蛇身闪烁
	StateGameOver                     // 显示结算
)

func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateDying:
		return "Dying"
	case StateGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// SessionEvent 会话事件
type SessionEvent int

const (
	EventAppleEaten SessionEvent = iota
	EventBonusEaten
	EventBonusAppeared
	EventGameOver
)

// SessionListener 接收会话事件（音效、界面提示）
type SessionListener interface {
	OnSessionEvent(event SessionEvent, s *Session)
}

// GameOverReason 游戏结束原因
type GameOverReason string

const (
	ReasonNone GameOverReason = ""
	ReasonWall GameOverReason = "wall"
	ReasonSelf GameOverReason = "self"
)

const (
	bonusSequenceName = "bonus"
	deathSequenceName = "death_blink"
)

// Session 单局游戏的控制器
//
// 负责碰撞和边界判定、计分、苹果重生以及奖励果实和死亡闪烁两个限时序列。
// 全部方法只能在游戏循环所在的 goroutine 中调用
type Session struct {
	id  string
	cfg *config.GameConfig

	board     *board.Board
	snake     *snake.Snake
	input     *systems.DirectionInputSystem
	sequences *systems.SequenceSystem
	pacer     *TickPacer
	rng       utils.RandomSource
	scores    HighScoreStore
	listeners []SessionListener

	state     SessionState
	score     int
	highScore int
	ticks     int
	reason    GameOverReason

	apple       types.Vector2i
	appleActive bool
	bonus       types.Vector2i
	bonusActive bool
	bonusSeq    ecs.EntityID
}

// NewSession 创建会话，蛇按配置放在起点，状态为 StateMenu
//
// 参数：
//   - cfg: 游戏配置
//   - rng: 随机源（苹果和奖励果实的位置、奖励果实的等待时间）
//   - scores: 最高分存储，可为 nil（不持久化）
//
// 返回：
//   - error: 网格尺寸或初始长度非法时返回错误
func NewSession(cfg *config.GameConfig, rng utils.RandomSource, scores HighScoreStore) (*Session, error) {
	b, err := board.NewBoard(cfg.Columns, cfg.Rows)
	if err != nil {
		return nil, err
	}
	sn := snake.New(b)
	if err := sn.Reset(cfg.Start.Vec(), cfg.InitialLength); err != nil {
		return nil, err
	}
	if scores == nil {
		scores = NewMemoryScoreStore(0)
	}

	s := &Session{
		cfg:       cfg,
		board:     b,
		snake:     sn,
		input:     systems.NewDirectionInputSystem(types.DirUp),
		sequences: systems.NewSequenceSystem(ecs.NewEntityManager()),
		pacer:     NewTickPacer(cfg.TickInterval),
		rng:       rng,
		scores:    scores,
		state:     StateMenu,
	}

	high, err := scores.Load()
	if err != nil {
		log.Printf("[Session] Warning: Failed to load high score: %v (starting from 0)", err)
	}
	s.highScore = high
	return s, nil
}

// AddListener 注册事件监听器
func (s *Session) AddListener(l SessionListener) {
	s.listeners = append(s.listeners, l)
}

// Start 开始新的一局
//
// 清空网格和输入队列，重置分数和蛇身，放置苹果并启动奖励果实循环
func (s *Session) Start() error {
	s.sequences.CancelAll()
	s.board.Reset()
	if err := s.snake.Reset(s.cfg.Start.Vec(), s.cfg.InitialLength); err != nil {
		return err
	}
	s.input.Reset(types.DirUp)
	s.pacer.Reset()

	s.score = 0
	s.ticks = 0
	s.reason = ReasonNone
	s.appleActive = false
	s.bonusActive = false

	s.plantApple()
	s.armBonus()

	s.id = uuid.NewString()
	s.state = StatePlaying
	log.Printf("[Session] Session %s started (%dx%d board, tick %.3fs, high score %d)",
		s.id, s.cfg.Columns, s.cfg.Rows, s.cfg.TickInterval, s.highScore)
	return nil
}

// Update 按帧推进会话：先执行到期的 tick，再推进限时序列
//
// 参数：
//   - dt: 距上一帧的时间（秒）
func (s *Session) Update(dt float64) {
	switch s.state {
	case StatePlaying:
		n := s.pacer.Advance(dt)
		for i := 0; i < n && s.state == StatePlaying; i++ {
			s.Tick()
		}
	case StatePaused, StateMenu, StateGameOver:
		return
	}
	s.sequences.Update(dt)
}

// Tick 执行一步游戏逻辑
//
// 顺序：取方向 → 计算新头部 → 越界判定 → 是否生长 → 自撞判定 → 移动 → 计分
func (s *Session) Tick() {
	if s.state != StatePlaying {
		return
	}
	s.ticks++

	dir := s.input.Next()
	head := s.snake.NextHeadPosition(dir)
	if !s.board.InBounds(head) {
		s.gameOver(ReasonWall)
		return
	}

	ateApple := s.appleActive && head == s.apple
	ateBonus := s.bonusActive && head == s.bonus
	grow := ateApple || ateBonus

	// 不生长时尾部会在同一步离开，可以追尾
	var collided bool
	if grow {
		collided = s.snake.Contains(head)
	} else {
		collided = s.snake.WithoutTailContains(head)
	}
	if collided {
		s.gameOver(ReasonSelf)
		return
	}

	if ateBonus {
		// 闪烁中被吃掉时格子可能处于隐藏状态
		s.board.SetHidden(head.X, head.Y, false)
	}
	s.snake.Move(dir, grow)

	switch {
	case ateApple:
		s.appleActive = false
		s.addScore(s.cfg.ApplePoints)
		s.emit(EventAppleEaten)
		s.plantApple()
	case ateBonus:
		s.bonusActive = false
		s.sequences.Cancel(s.bonusSeq)
		s.addScore(s.cfg.Bonus.Points)
		s.emit(EventBonusEaten)
		s.armBonus()
	}
}

// PushDirection 加入一个方向指令，只在游戏中有效
func (s *Session) PushDirection(d types.Direction) bool {
	if s.state != StatePlaying {
		return false
	}
	return s.input.Push(d)
}

// TogglePause 在游戏中和暂停之间切换
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
		log.Printf("[Session] Session %s paused", s.id)
	case StatePaused:
		s.state = StatePlaying
		log.Printf("[Session] Session %s resumed", s.id)
	}
}

// ReturnToMenu 结算后回到菜单
func (s *Session) ReturnToMenu() {
	s.sequences.CancelAll()
	s.snake.Show()
	s.state = StateMenu
}

func (s *Session) ID() string                 { return s.id }
func (s *Session) Board() *board.Board        { return s.board }
func (s *Session) Snake() *snake.Snake        { return s.snake }
func (s *Session) Config() *config.GameConfig { return s.cfg }
func (s *Session) State() SessionState        { return s.state }
func (s *Session) Score() int                 { return s.score }
func (s *Session) HighScore() int             { return s.highScore }
func (s *Session) TickCount() int             { return s.ticks }
func (s *Session) Reason() GameOverReason     { return s.reason }

// Apple 返回苹果位置；网格已满时 ok 为 false
func (s *Session) Apple() (types.Vector2i, bool) {
	return s.apple, s.appleActive
}

// Bonus 返回奖励果实位置；未放置时 ok 为 false
func (s *Session) Bonus() (types.Vector2i, bool) {
	return s.bonus, s.bonusActive
}

// plantApple 在随机空格放置苹果，没有空格时跳过
func (s *Session) plantApple() {
	if s.appleActive && s.board.At(s.apple).Content == types.TileApple {
		s.board.SetAt(s.apple, types.TileEmpty)
	}
	s.appleActive = false

	p, ok := s.pickEmpty()
	if !ok {
		log.Printf("[Session] No empty tile for apple")
		return
	}
	s.setApple(p)
}

func (s *Session) setApple(p types.Vector2i) {
	if s.appleActive && s.board.At(s.apple).Content == types.TileApple {
		s.board.SetAt(s.apple, types.TileEmpty)
	}
	s.apple = p
	s.appleActive = true
	s.board.SetAt(p, types.TileApple)
}

// armBonus 启动一轮奖励果实序列：等待 → 出现 → 停留 → 闪烁 → 消失，结束后自动开始下一轮
func (s *Session) armBonus() {
	bc := s.cfg.Bonus
	delay := utils.RandomRange(s.rng, s.cfg.Ticks(bc.MinDelayTicks), s.cfg.Ticks(bc.MaxDelayTicks))
	blink := s.cfg.Ticks(bc.BlinkTicks)

	steps := []components.SequenceStep{
		{Delay: delay, Effect: s.placeBonus},
	}
	pause := s.cfg.Ticks(bc.VisibleTicks)
	for i := 0; i < bc.BlinkCount; i++ {
		steps = append(steps,
			components.SequenceStep{Delay: pause, Effect: func() { s.setBonusHidden(true) }},
			components.SequenceStep{Delay: blink, Effect: func() { s.setBonusHidden(false) }},
		)
		pause = blink
	}
	steps = append(steps, components.SequenceStep{Delay: pause, Effect: s.removeBonus})

	s.bonusSeq = s.sequences.Start(bonusSequenceName, steps, s.armBonus)
}

func (s *Session) placeBonus() {
	p, ok := s.pickEmpty()
	if !ok {
		log.Printf("[Session] No empty tile for bonus")
		return
	}
	s.setBonus(p)
	s.emit(EventBonusAppeared)
}

func (s *Session) setBonus(p types.Vector2i) {
	if s.bonusActive {
		s.removeBonus()
	}
	s.bonus = p
	s.bonusActive = true
	s.board.SetAt(p, types.TileBonus)
}

func (s *Session) setBonusHidden(hidden bool) {
	if s.bonusActive {
		s.board.SetHidden(s.bonus.X, s.bonus.Y, hidden)
	}
}

func (s *Session) removeBonus() {
	if !s.bonusActive {
		return
	}
	s.board.SetHidden(s.bonus.X, s.bonus.Y, false)
	s.board.SetAt(s.bonus, types.TileEmpty)
	s.bonusActive = false
}

func (s *Session) pickEmpty() (types.Vector2i, bool) {
	var empty []types.Vector2i
	for p := range s.board.EmptyPositions() {
		empty = append(empty, p)
	}
	return utils.PickRandom(s.rng, empty)
}

func (s *Session) addScore(points int) {
	s.score += points
	if s.score <= s.highScore {
		return
	}
	s.highScore = s.score
	if err := s.scores.Save(s.highScore); err != nil {
		log.Printf("[Session] Warning: Failed to save high score: %v", err)
	}
}

// gameOver 停止奖励果实循环并播放死亡闪烁，结束后进入 StateGameOver
func (s *Session) gameOver(reason GameOverReason) {
	s.sequences.Cancel(s.bonusSeq)
	s.setBonusHidden(false)
	s.reason = reason
	s.state = StateDying
	log.Printf("[Session] Session %s over (%s): score=%d high=%d ticks=%d",
		s.id, reason, s.score, s.highScore, s.ticks)
	s.emit(EventGameOver)

	blink := s.cfg.Ticks(s.cfg.DeathBlinkTicks)
	var steps []components.SequenceStep
	pause := 0.0
	for i := 0; i < s.cfg.DeathBlinkCount; i++ {
		steps = append(steps,
			components.SequenceStep{Delay: pause, Effect: s.snake.Hide},
			components.SequenceStep{Delay: blink, Effect: s.snake.Show},
		)
		pause = blink
	}
	steps = append(steps, components.SequenceStep{Delay: pause})

	s.sequences.Start(deathSequenceName, steps, func() {
		s.state = StateGameOver
	})
}

func (s *Session) emit(event SessionEvent) {
	for _, l := range s.listeners {
		l.OnSessionEvent(event, s)
	}
}
