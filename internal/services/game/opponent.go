package game

// opponentNames is the roster AI players draw display names from, in
// seat order
var opponentNames = []string{
	"Aoi",
	"Hinata",
	"Ren",
	"Mio",
}

// thinkDelay returns a short pause before an AI acts, 1 to 2 units
func (s *service) thinkDelay() int {
	return 1 + s.roller.Intn(2)
}

// capToRemaining shortens an AI delay so the action lands before the
// countdown expires
func (s *service) capToRemaining(delay int) int {
	remaining := s.countdown.Remaining()
	if remaining <= 1 {
		return 0
	}
	if delay >= remaining {
		return remaining - 1
	}
	return delay
}

// scheduleOpponentPeek drives the current AI player through PEEK: one or
// two peeks at random unflipped cells, then FinishPeek. Each step is
// chained from the previous one so a phase change cancels the rest.
func (s *service) scheduleOpponentPeek() {
	peeks := 1 + s.roller.Intn(2)
	s.scheduleOpponentPeekStep(peeks)
}

func (s *service) scheduleOpponentPeekStep(peeksLeft int) {
	epoch := s.epoch
	delay := s.capToRemaining(s.thinkDelay())

	s.sched.Schedule(delay, s.guard(epoch, func() {
		current := s.players[s.turnIndex]

		if peeksLeft <= 0 {
			s.applyFinishPeek(current.ID)
			return
		}

		indexes := current.Board.UnflippedIndexes()
		if len(indexes) == 0 {
			s.applyFinishPeek(current.ID)
			return
		}

		idx := indexes[s.roller.Intn(len(indexes))]
		s.applyPeek(current.ID, current.Board[idx].ID)
		s.scheduleOpponentPeekStep(peeksLeft - 1)
	}))
}

// scheduleOpponentSelect has the current AI player challenge a random
// unflipped cell after a short think
func (s *service) scheduleOpponentSelect() {
	epoch := s.epoch
	delay := s.capToRemaining(s.thinkDelay())

	s.sched.Schedule(delay, s.guard(epoch, func() {
		current := s.players[s.turnIndex]

		indexes := current.Board.UnflippedIndexes()
		if len(indexes) == 0 {
			s.forceSelect()
			return
		}

		idx := indexes[s.roller.Intn(len(indexes))]
		s.applySelect(current.ID, current.Board[idx].Item.ID)
	}))
}

// scheduleOpponentAnswers queues a quiz answer for every AI player. Each
// answers correctly with probability AIAccuracy, otherwise picks a wrong
// option uniformly. Delays are staggered and may outrun the quiz deadline;
// the timeout fill then records the marker first and the late answer is a
// write-once no-op.
func (s *service) scheduleOpponentAnswers() {
	epoch := s.epoch

	for _, p := range s.players {
		if !p.IsAI {
			continue
		}

		optionID := s.quiz.CorrectOptionID
		if s.roller.Float64() >= s.config.AIAccuracy {
			wrong := s.quiz.WrongOptionIDs()
			optionID = wrong[s.roller.Intn(len(wrong))]
		}

		delay := 2 + s.roller.Intn(s.config.QuizTimeout+1)
		playerID := p.ID

		s.sched.Schedule(delay, s.guard(epoch, func() {
			s.applyAnswer(playerID, optionID)
		}))
	}
}
