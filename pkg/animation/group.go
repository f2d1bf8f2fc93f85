package animation

// Move pairs a channel with the target it should animate to.
type Move struct {
	Channel *Channel
	Target  float64
}

// Group starts channels together and reports when all of them have settled.
//
// Channels in a group step independently; none waits for another. Each Run
// supersedes the previous one, so the completion callback of an earlier Run
// never fires once a newer Run or Cancel has happened.
type Group struct {
	generation uint64
}

// Run animates every move concurrently and calls onComplete once all of them
// have settled. With no moves, onComplete runs immediately.
func (g *Group) Run(onComplete func(), moves ...Move) {
	g.generation++
	gen := g.generation

	pending := len(moves)
	if pending == 0 {
		if onComplete != nil {
			onComplete()
		}
		return
	}

	settle := func() {
		if gen != g.generation {
			return
		}
		pending--
		if pending == 0 && onComplete != nil {
			onComplete()
		}
	}
	for _, m := range moves {
		m.Channel.AnimateToThen(m.Target, settle)
	}
}

// Cancel drops the completion callback of the current run. Channels keep
// moving until they are retargeted or stopped.
func (g *Group) Cancel() {
	g.generation++
}
