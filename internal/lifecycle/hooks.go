// Package lifecycle implements the phase state machine shared by every game
// and the host callbacks fired on its transitions.
package lifecycle

// Hooks are the callbacks a host passes into a game constructor.
// Any field may be nil; a nil hook is a no-op.
type Hooks struct {
	OnGameStart  func()
	OnGamePause  func()
	OnGameResume func()
	OnGameOver   func(score int)
}

func (h Hooks) start() {
	if h.OnGameStart != nil {
		h.OnGameStart()
	}
}

func (h Hooks) pause() {
	if h.OnGamePause != nil {
		h.OnGamePause()
	}
}

func (h Hooks) resume() {
	if h.OnGameResume != nil {
		h.OnGameResume()
	}
}

func (h Hooks) over(score int) {
	if h.OnGameOver != nil {
		h.OnGameOver(score)
	}
}

// Chain returns Hooks that call each of hs in order.
func Chain(hs ...Hooks) Hooks {
	return Hooks{
		OnGameStart: func() {
			for _, h := range hs {
				h.start()
			}
		},
		OnGamePause: func() {
			for _, h := range hs {
				h.pause()
			}
		},
		OnGameResume: func() {
			for _, h := range hs {
				h.resume()
			}
		},
		OnGameOver: func(score int) {
			for _, h := range hs {
				h.over(score)
			}
		},
	}
}
