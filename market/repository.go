/*
 * Copyright (C) 2023 The "VeilNetwork/desktop" Authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package market

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrNoProposals indicates that no server matched the requested selector.
var ErrNoProposals = errors.New("no proposals match the given selector")

// Repository holds the known server proposals.
type Repository struct {
	proposals []ServerProposal
	random    *rand.Rand
}

// NewRepository creates a repository serving the default fixture set.
func NewRepository() *Repository {
	return NewRepositoryWith(DefaultProposals(), time.Now().UnixNano())
}

// NewRepositoryWith creates a repository from the given proposal set.
func NewRepositoryWith(proposals []ServerProposal, seed int64) *Repository {
	return &Repository{
		proposals: proposals,
		random:    rand.New(rand.NewSource(seed)),
	}
}

// DefaultProposals is the fixture set served by the simulator.
func DefaultProposals() []ServerProposal {
	return []ServerProposal{
		{ProviderID: "de-1", Country: "DE", Category: CategoryStandard, EgressIP: "198.51.100.11"},
		{ProviderID: "de-2", Country: "DE", Category: CategoryP2P, EgressIP: "198.51.100.12"},
		{ProviderID: "fr-1", Country: "FR", Category: CategoryStandard, EgressIP: "198.51.100.21"},
		{ProviderID: "fr-2", Country: "FR", Category: CategorySecureCore, EgressIP: "198.51.100.22"},
		{ProviderID: "nl-1", Country: "NL", Category: CategoryStandard, EgressIP: "198.51.100.31"},
		{ProviderID: "nl-2", Country: "NL", Category: CategoryTor, EgressIP: "198.51.100.32"},
		{ProviderID: "us-1", Country: "US", Category: CategoryStandard, EgressIP: "198.51.100.41"},
		{ProviderID: "us-2", Country: "US", Category: CategorySecureCore, EgressIP: "198.51.100.42"},
	}
}

// All returns every known proposal.
func (r *Repository) All() []ServerProposal {
	result := make([]ServerProposal, len(r.proposals))
	copy(result, r.proposals)
	return result
}

// Countries returns the sorted distinct country codes, optionally filtered
// by a case-insensitive substring.
func (r *Repository) Countries(filter string) []string {
	seen := map[string]bool{}
	var result []string
	for _, p := range r.proposals {
		if filter != "" && !strings.Contains(strings.ToLower(p.Country), strings.ToLower(filter)) {
			continue
		}
		if !seen[p.Country] {
			seen[p.Country] = true
			result = append(result, p.Country)
		}
	}
	sort.Strings(result)
	return result
}

// ByCountry returns proposals for the given country code and category.
func (r *Repository) ByCountry(country string, category Category) []ServerProposal {
	var result []ServerProposal
	for _, p := range r.proposals {
		if strings.EqualFold(p.Country, country) && p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

// Fastest returns the proposal a latency-aware selector would pick.
// The simulator treats the first standard proposal as the fastest one.
func (r *Repository) Fastest() (ServerProposal, error) {
	for _, p := range r.proposals {
		if p.Category == CategoryStandard {
			return p, nil
		}
	}
	return ServerProposal{}, ErrNoProposals
}

// Random returns a uniformly chosen standard proposal.
func (r *Repository) Random() (ServerProposal, error) {
	var standard []ServerProposal
	for _, p := range r.proposals {
		if p.Category == CategoryStandard {
			standard = append(standard, p)
		}
	}
	if len(standard) == 0 {
		return ServerProposal{}, ErrNoProposals
	}
	return standard[r.random.Intn(len(standard))], nil
}

// Find returns the single proposal matching country and category.
func (r *Repository) Find(country string, category Category) (ServerProposal, error) {
	matches := r.ByCountry(country, category)
	if len(matches) == 0 {
		return ServerProposal{}, ErrNoProposals
	}
	return matches[0], nil
}
