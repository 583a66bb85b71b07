package ledger

import (
	"fmt"
	"math"
	"sort"
)

// party is a member owing or being owed a positive amount during netting.
type party struct {
	nickname string
	amount   float64
}

// PlanSettlements turns a balance set into an ordered list of transfers that
// would bring every balance to zero. It pairs the largest debtor with the
// largest creditor greedily; the result is small but not guaranteed to be the
// theoretical minimum number of transfers.
//
// Sorting is stable over nickname-sorted input, so equal amounts always
// produce the same plan. Residuals below Epsilon are absorbed by the cursor
// advance and suggestions under one cent are dropped entirely.
//
// If total debt and total credit disagree by more than Epsilon per member the
// upstream balances have drifted from their source records; that is returned
// as ErrUnbalanced rather than silently truncated.
func PlanSettlements(balances map[string]float64) ([]Settlement, error) {
	nicks := make([]string, 0, len(balances))
	for nick := range balances {
		nicks = append(nicks, nick)
	}
	sort.Strings(nicks)

	var debtors, creditors []party
	var totalDebt, totalCredit float64
	for _, nick := range nicks {
		b := balances[nick]
		switch {
		case b <= -Epsilon:
			debtors = append(debtors, party{nickname: nick, amount: -b})
			totalDebt += -b
		case b >= Epsilon:
			creditors = append(creditors, party{nickname: nick, amount: b})
			totalCredit += b
		}
	}

	if len(debtors) == 0 || len(creditors) == 0 {
		return []Settlement{}, nil
	}

	if math.Abs(totalDebt-totalCredit) > Epsilon*float64(len(balances)) {
		return nil, fmt.Errorf("%w: debt %.2f vs credit %.2f", ErrUnbalanced, totalDebt, totalCredit)
	}

	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].amount > debtors[j].amount })
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].amount > creditors[j].amount })

	var plan []Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := math.Min(debtors[i].amount, creditors[j].amount)

		if rounded := round2(amount); rounded >= Epsilon {
			plan = append(plan, Settlement{
				From:   debtors[i].nickname,
				To:     creditors[j].nickname,
				Amount: rounded,
			})
		}

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount < Epsilon {
			i++
		}
		if creditors[j].amount < Epsilon {
			j++
		}
	}

	if plan == nil {
		plan = []Settlement{}
	}
	return plan, nil
}

// Settle computes balances for the snapshot and plans the transfers that
// would zero them out.
func Settle(snap Snapshot) ([]Settlement, error) {
	balances, err := ComputeBalances(snap)
	if err != nil {
		return nil, err
	}
	return PlanSettlements(balances)
}
