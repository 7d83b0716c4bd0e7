package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/apperrors"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/chartdata"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
)

// Loader fetches and decodes all documents of one snapshot.
type Loader struct {
	source Source
}

// NewLoader creates a Loader reading from the given source.
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// ownershipDoc is the wire shape of institutional_ownership.json. The holdings
// array is kept raw so a malformed array degrades alone, without losing the
// scalar summary fields.
type ownershipDoc struct {
	TotalInstitutionalShares float64         `json:"total_institutional_shares"`
	TotalInstitutionalValue  float64         `json:"total_institutional_value"`
	NumberOfInstitutions     int             `json:"number_of_institutions"`
	LargestHolder            string          `json:"largest_holder"`
	LargestHolderShares      float64         `json:"largest_holder_shares"`
	LastUpdated              string          `json:"last_updated"`
	HoldingsByInvestor       json.RawMessage `json:"holdings_by_investor"`
}

// Load fetches all six documents concurrently and assembles one immutable
// snapshot. A document that cannot be fetched or decoded degrades to its zero
// value and is recorded in Missing; Load fails as a whole only on context
// cancellation. Aggregate documents that are missing are re-derived from the
// raw transactions when possible.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{LoadedAt: time.Now().UTC()}

	var mu sync.Mutex
	degrade := func(name string, err error) {
		log.Printf("snapshot: %s unavailable, using empty default: %v", name, err)
		mu.Lock()
		snap.Missing = append(snap.Missing, name)
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := l.source.Fetch(ctx, DocTransactions)
		if err != nil {
			return l.skip(ctx, DocTransactions, err, degrade)
		}
		txs, err := decodeArray[model.Transaction](data, DocTransactions)
		if err != nil {
			degrade(DocTransactions, err)
			return nil
		}
		for i := range txs {
			if txs[i].ID == "" {
				txs[i].ID = uuid.NewString()
			}
		}
		snap.Transactions = txs
		return nil
	})

	g.Go(func() error {
		data, err := l.source.Fetch(ctx, DocPriceHistory)
		if err != nil {
			return l.skip(ctx, DocPriceHistory, err, degrade)
		}
		points, err := NormalizePriceHistory(data)
		if err != nil {
			degrade(DocPriceHistory, err)
			return nil
		}
		snap.PriceHistory = points
		return nil
	})

	g.Go(func() error {
		data, err := l.source.Fetch(ctx, DocOwnership)
		if err != nil {
			return l.skip(ctx, DocOwnership, err, degrade)
		}
		var doc ownershipDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			degrade(DocOwnership, fmt.Errorf("%w: %s: %v", apperrors.ErrUnexpectedShape, DocOwnership, err))
			return nil
		}
		summary := model.OwnershipSummary{
			TotalInstitutionalShares: doc.TotalInstitutionalShares,
			TotalInstitutionalValue:  doc.TotalInstitutionalValue,
			NumberOfInstitutions:     doc.NumberOfInstitutions,
			LargestHolder:            doc.LargestHolder,
			LargestHolderShares:      doc.LargestHolderShares,
			LastUpdated:              doc.LastUpdated,
		}
		if len(doc.HoldingsByInvestor) > 0 {
			holdings, err := decodeArray[model.HolderRecord](doc.HoldingsByInvestor, "holdings_by_investor")
			if err != nil {
				log.Printf("snapshot: %s holdings malformed, keeping summary scalars: %v", DocOwnership, err)
			} else {
				summary.HoldingsByInvestor = holdings
			}
		}
		snap.Ownership = summary
		return nil
	})

	g.Go(func() error {
		data, err := l.source.Fetch(ctx, DocCluster)
		if err != nil {
			return l.skip(ctx, DocCluster, err, degrade)
		}
		entries, err := decodeArray[model.ClusterEntry](data, DocCluster)
		if err != nil {
			degrade(DocCluster, err)
			return nil
		}
		snap.Cluster = entries
		return nil
	})

	g.Go(func() error {
		data, err := l.source.Fetch(ctx, DocExecutives)
		if err != nil {
			return l.skip(ctx, DocExecutives, err, degrade)
		}
		execs, err := decodeArray[model.ExecutiveSummary](data, DocExecutives)
		if err != nil {
			degrade(DocExecutives, err)
			return nil
		}
		snap.Executives = execs
		return nil
	})

	g.Go(func() error {
		data, err := l.source.Fetch(ctx, DocStats)
		if err != nil {
			return l.skip(ctx, DocStats, err, degrade)
		}
		var stats model.DashboardStats
		if err := json.Unmarshal(data, &stats); err != nil {
			degrade(DocStats, fmt.Errorf("%w: %s: %v", apperrors.ErrUnexpectedShape, DocStats, err))
			return nil
		}
		snap.Stats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.fillDerived(snap)

	log.Printf("snapshot: loaded from %s (%d transactions, %d price points, %d holders, %d missing)",
		l.source.Describe(), len(snap.Transactions), len(snap.PriceHistory),
		len(snap.Ownership.HoldingsByInvestor), len(snap.Missing))

	return snap, nil
}

// skip records a per-document failure unless the whole load was canceled.
func (l *Loader) skip(ctx context.Context, name string, err error, degrade func(string, error)) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	degrade(name, err)
	return nil
}

// fillDerived recomputes missing aggregate documents from the raw
// transactions, mirroring what the generator would have produced.
func (l *Loader) fillDerived(snap *Snapshot) {
	if len(snap.Transactions) == 0 {
		return
	}
	if snap.IsMissing(DocExecutives) {
		snap.Executives = chartdata.DeriveExecutives(snap.Transactions)
	}
	if snap.IsMissing(DocStats) {
		snap.Stats = chartdata.DeriveStats(snap.Transactions, snap.LoadedAt)
	}
	if snap.IsMissing(DocPriceHistory) {
		snap.PriceHistory = chartdata.DerivePriceHistory(snap.Transactions)
	}
}
