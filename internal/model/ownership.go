package model

// HolderRecord is one institution's position as reported in its most recent
// 13F filing. Collections arrive pre-sorted descending by ValueDollars (or
// Shares for the cluster document); the transforms do not re-sort.
type HolderRecord struct {
	InvestorName string  `json:"investor_name"`
	CIK          string  `json:"cik,omitempty"`
	Shares       float64 `json:"shares"`
	ValueDollars float64 `json:"value_dollars"`
	FilingDate   string  `json:"filing_date"`
}

// OwnershipSummary mirrors institutional_ownership.json: scalar roll-ups plus
// the per-investor holdings they were computed from.
type OwnershipSummary struct {
	TotalInstitutionalShares float64        `json:"total_institutional_shares"`
	TotalInstitutionalValue  float64        `json:"total_institutional_value"`
	NumberOfInstitutions     int            `json:"number_of_institutions"`
	LargestHolder            string         `json:"largest_holder"`
	LargestHolderShares      float64        `json:"largest_holder_shares"`
	LastUpdated              string         `json:"last_updated"`
	HoldingsByInvestor       []HolderRecord `json:"holdings_by_investor"`
}

// ClusterEntry is one holder in ownership_cluster.json, the flattened shape
// consumed by the bubble view.
type ClusterEntry struct {
	Name       string  `json:"name"`
	Shares     float64 `json:"shares"`
	Value      float64 `json:"value"`
	FilingDate string  `json:"filing_date"`
}
