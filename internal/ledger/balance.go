package ledger

import "math"

// ComputeBalances folds a snapshot into a net balance per member nickname.
// Positive means the member is owed money, negative means they owe.
//
// Every member appears in the result, including those with no activity.
// Expenses credit the payer with the full amount and debit each member of the
// split set by amount/len(split) exactly; payments credit the payer and debit
// the payee. Rounding to 2 decimals happens once, at the end, so fractional
// cents from uneven splits cancel instead of compounding.
//
// An expense or payment referencing a nickname outside the member list is
// rejected with *UnknownMemberError before any result is produced. The
// function is pure: it reads nothing but its argument and mutates nothing.
func ComputeBalances(snap Snapshot) (map[string]float64, error) {
	balances := make(map[string]float64, len(snap.Members))
	for _, m := range snap.Members {
		balances[m.Nickname] = 0
	}

	for _, e := range snap.Expenses {
		if e.Amount <= 0 {
			return nil, ErrNonPositiveAmount
		}
		if len(e.SplitBetween) == 0 {
			return nil, ErrEmptySplit
		}
		if _, ok := balances[e.PaidBy]; !ok {
			return nil, &UnknownMemberError{Nickname: e.PaidBy}
		}
		for _, nick := range e.SplitBetween {
			if _, ok := balances[nick]; !ok {
				return nil, &UnknownMemberError{Nickname: nick}
			}
		}

		balances[e.PaidBy] += e.Amount
		share := e.Amount / float64(len(e.SplitBetween))
		for _, nick := range e.SplitBetween {
			balances[nick] -= share
		}
	}

	for _, p := range snap.Payments {
		if p.Amount <= 0 {
			return nil, ErrNonPositiveAmount
		}
		if p.From == p.To {
			return nil, ErrSelfPayment
		}
		if _, ok := balances[p.From]; !ok {
			return nil, &UnknownMemberError{Nickname: p.From}
		}
		if _, ok := balances[p.To]; !ok {
			return nil, &UnknownMemberError{Nickname: p.To}
		}

		balances[p.From] += p.Amount
		balances[p.To] -= p.Amount
	}

	for nick, b := range balances {
		balances[nick] = round2(b)
	}

	return balances, nil
}

// ComputeStats aggregates a balance set into group totals.
func ComputeStats(balances map[string]float64) Stats {
	var s Stats
	for _, b := range balances {
		if b > 0 {
			s.TotalToReceive += b
		} else if b < 0 {
			s.TotalOwed += -b
		}
	}
	s.TotalOwed = round2(s.TotalOwed)
	s.TotalToReceive = round2(s.TotalToReceive)
	return s
}

// round2 rounds to 2 decimals, half away from zero. Applied once per final
// balance, never per transaction.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
