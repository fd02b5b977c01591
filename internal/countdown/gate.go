package countdown

// ShouldLoop decides whether the alarm should be looping: the countdown
// has reached zero and the user has not silenced it. Pure predicate;
// the controller applies it every running tick.
func ShouldLoop(value int, silenced bool) bool {
	return value == 0 && !silenced
}
