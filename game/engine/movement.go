package engine

// resolveTurn runs one movement for p. The caller has already validated steps.
//
// Order of resolution:
//  1. a bankrupt player does not move
//  2. position advances modulo the board size
//  3. wrapping around (new position < old position) pays the GO payout
//  4. landing exactly on GO ends the turn
//  5. an unowned space or the player's own space ends the turn
//  6. otherwise rent is settled with the owner, bankrupting the mover when
//     their balance does not strictly exceed the rent
func (e *GameEngine) resolveTurn(p *Player, steps int) *TurnResult {
	result := &TurnResult{
		Player: p.Name,
		Steps:  steps,
		From:   p.Position,
		To:     p.Position,
	}

	if p.IsBankrupt() {
		result.Outcome = OutcomeBankruptSkip
		result.BalanceAfter = p.Balance
		e.logger.Debug().Str("player", p.Name).Msg("bankrupt player skipped")
		return result
	}

	from := p.Position
	to := (from + steps%len(e.spaces)) % len(e.spaces)
	p.Position = to
	result.To = to

	if to < from {
		p.Balance += e.goPayout
		result.PassedGo = true
		result.GoPayout = e.goPayout
	}

	defer func() {
		result.BalanceAfter = p.Balance
		e.logger.Debug().
			Str("player", p.Name).
			Int("from", result.From).
			Int("to", result.To).
			Bool("passed_go", result.PassedGo).
			Str("outcome", string(result.Outcome)).
			Int("balance", p.Balance).
			Msg("turn resolved")
	}()

	if to == GoIndex {
		result.Outcome = OutcomeLandedGo
		return result
	}

	space := &e.spaces[to]
	if !space.IsOwned {
		result.Outcome = OutcomeUnowned
		return result
	}
	if p.Owns(to) {
		result.Outcome = OutcomeOwnSpace
		return result
	}

	owner := e.ownerOf(to)
	if owner == nil {
		// flag set without a holder; treat as unowned rather than charge nobody
		e.logger.Warn().Int("space", to).Msg("owned space has no owner")
		result.Outcome = OutcomeUnowned
		return result
	}

	result.Owner = owner.Name
	result.RentOwed = space.Rent
	e.settleRent(p, owner, space.Rent, result)
	return result
}

// settleRent moves rent from mover to owner. When the mover cannot pay and
// keep a positive balance, everything they have goes to the owner and their
// spaces return to the bank.
func (e *GameEngine) settleRent(mover, owner *Player, rent int, result *TurnResult) {
	if mover.Balance > rent {
		mover.Balance -= rent
		owner.Balance += rent
		result.RentPaid = rent
		result.Outcome = OutcomeRentPaid
		return
	}

	paid := mover.Balance
	owner.Balance += paid
	mover.Balance = 0
	result.RentPaid = paid
	result.Liquidated = e.liquidate(mover)
	result.Outcome = OutcomeBankrupt

	e.logger.Info().
		Str("player", mover.Name).
		Str("creditor", owner.Name).
		Int("rent", rent).
		Int("paid", paid).
		Ints("liquidated", result.Liquidated).
		Msg("player bankrupt")
}

// liquidate returns every space held by p to the unowned pool.
func (e *GameEngine) liquidate(p *Player) []int {
	released := p.OwnedSpaces()
	for _, index := range released {
		e.spaces[index].markUnowned()
		p.removeOwned(index)
	}
	return released
}
