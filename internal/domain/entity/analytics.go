package entity

// TopSeller is one row of the top-sellers ranking
type TopSeller struct {
	SellerID      uint64
	Email         string
	EarningsCents int64
}

// AnalyticsSnapshot is a read-only aggregate over the whole store. It is an
// eventually-consistent snapshot; the reads are not wrapped in a transaction.
type AnalyticsSnapshot struct {
	UsersByRole           map[Role]int64
	OrdersByStatus        map[OrderStatus]int64
	CompletedRevenueCents int64
	ProductCount          int64
	TotalStock            int64
	TopSellers            []TopSeller
}
