package tabletop

// OnceTrigger fires exactly once and then stays disabled until Rearm is
// called. Re-arming is the host's decision; the scene never re-arms itself.
type OnceTrigger struct {
	fired bool
	fires int
}

// Poll reports true the first time it is called after construction or
// after Rearm, and false otherwise.
func (t *OnceTrigger) Poll() bool {
	if t.fired {
		return false
	}
	t.fired = true
	t.fires++
	return true
}

// Rearm allows the trigger to fire once more.
func (t *OnceTrigger) Rearm() {
	t.fired = false
}

// Armed reports whether the next Poll will fire.
func (t *OnceTrigger) Armed() bool {
	return !t.fired
}

// Fires returns how many times the trigger has fired.
func (t *OnceTrigger) Fires() int {
	return t.fires
}
