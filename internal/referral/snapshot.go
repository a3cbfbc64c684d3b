package referral

import "github.com/GlebRadaev/stakeledger/internal/domain"

// FromAccounts builds a graph from accounts ordered so that parents come first (ascending id does).
// A parent outside the slice makes its child a root of the snapshot.
func FromAccounts(accounts []domain.Account) (*Graph, error) {
	g := New()
	for _, a := range accounts {
		parent := a.ParentID
		if parent != nil && !g.Has(*parent) {
			parent = nil
		}
		if err := g.Add(a.ID, parent); err != nil {
			return nil, err
		}
	}
	return g, nil
}
