package popmenu

import "time"

// Animator runs timed transitions.
//
// step receives eased progress in [0, 1]. done runs exactly once, never from inside Animate:
// with true when the transition reached 1, with false when cancel was called first.
type Animator interface {
	Animate(duration time.Duration, step func(progress float64), done func(finished bool)) (cancel func())
}

// FrameAnimator is an Animator advanced by the host's frame loop.
// It is not safe for concurrent use; drive it from the UI thread.
type FrameAnimator struct {
	running []*animation
	Easing  func(float64) float64
}

type animation struct {
	duration time.Duration
	elapsed  time.Duration
	step     func(float64)
	done     func(bool)
	finished bool
}

func NewFrameAnimator() *FrameAnimator {
	return &FrameAnimator{Easing: EaseInOut}
}

func (a *FrameAnimator) Animate(duration time.Duration, step func(float64), done func(bool)) func() {
	an := &animation{duration: duration, step: step, done: done}
	a.running = append(a.running, an)

	return func() {
		if an.finished {
			return
		}
		an.finished = true
		a.remove(an)
		if an.done != nil {
			an.done(false)
		}
	}
}

// Advance moves every running animation forward by dt and completes those that reach their end.
// Animations started from a callback during Advance first move on the next call.
func (a *FrameAnimator) Advance(dt time.Duration) {
	pending := a.running
	a.running = nil

	for _, an := range pending {
		if an.finished {
			continue
		}

		an.elapsed += dt
		progress := 1.0
		if an.duration > 0 {
			progress = min(1, float64(an.elapsed)/float64(an.duration))
		}

		if an.step != nil {
			an.step(a.ease(progress))
		}

		// cancelled from its own step
		if an.finished {
			continue
		}

		if progress >= 1 {
			an.finished = true
			if an.done != nil {
				an.done(true)
			}
			continue
		}

		a.running = append(a.running, an)
	}
}

// Active is the number of animations still running.
func (a *FrameAnimator) Active() int {
	return len(a.running)
}

func (a *FrameAnimator) ease(p float64) float64 {
	if a.Easing == nil {
		return p
	}
	return a.Easing(p)
}

func (a *FrameAnimator) remove(target *animation) {
	for i, an := range a.running {
		if an == target {
			a.running = append(a.running[:i], a.running[i+1:]...)
			return
		}
	}
}

// EaseInOut is a cubic ease-in-out curve.
func EaseInOut(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return p * p * (3 - 2*p)
}

// Linear is the identity curve.
func Linear(p float64) float64 {
	return p
}

func lerp(from, to, p float64) float64 {
	if p >= 1 {
		return to
	}
	return from + (to-from)*p
}
