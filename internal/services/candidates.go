package services

import (
	"github.com/google/uuid"

	"github.com/wearloop/wearloop-backend/internal/types"
)

// ProductIDSet is the per-request candidate set: the deduplicated product ids
// a recommendation request will try to resolve. It is built in memory and
// discarded when the request completes.
type ProductIDSet map[uuid.UUID]struct{}

func (s ProductIDSet) Add(id uuid.UUID) {
	s[id] = struct{}{}
}

func (s ProductIDSet) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

func (s ProductIDSet) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// BuildCandidates unions the product ids from the requester's own
// interactions with those of their cohort peers. A product interacted with
// repeatedly, or by both sides, contributes once. Pure set construction: no
// cohort or storage knowledge, and empty inputs yield an empty set.
func BuildCandidates(own, peers []*types.Interaction) ProductIDSet {
	candidates := make(ProductIDSet, len(own)+len(peers))
	for _, interaction := range own {
		candidates.Add(interaction.ProductID)
	}
	for _, interaction := range peers {
		candidates.Add(interaction.ProductID)
	}
	return candidates
}
