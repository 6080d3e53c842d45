package checkout

import "aboshop/internal/core/domain/model/kernel"

// Quote is the computed price for the current configuration. It is
// derived state, never edited by the customer, and recomputed on every
// configuration change. Invariants (maintained by the pricing engine):
// YearlyPrice equals MonthlyPrice*12 adjusted by the annual discount, and
// Total always equals the price for the selected billing interval.
type Quote struct {
	MonthlyPrice kernel.Money
	YearlyPrice  kernel.Money
	DeliveryFee  kernel.Money
	Discount     string
	Method       DeliveryMethod
	Total        kernel.Money
}
