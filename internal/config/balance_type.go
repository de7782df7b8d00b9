package config

// BalanceFlow labels the direction of a balance movement in event payloads:
// chips leaving the balance flow out, refunds and payouts flow in.
type BalanceFlow string

const (
	FlowIncome  BalanceFlow = "income"
	FlowOutcome BalanceFlow = "outcome"
)
