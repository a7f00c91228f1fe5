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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountries_FiltersAndSorts(t *testing.T) {
	repo := NewRepositoryWith(DefaultProposals(), 1)

	assert.Equal(t, []string{"DE", "FR", "NL", "US"}, repo.Countries(""))
	assert.Equal(t, []string{"DE"}, repo.Countries("de"))
	assert.Empty(t, repo.Countries("zz"))
}

func TestFind_MatchesCountryAndCategory(t *testing.T) {
	repo := NewRepositoryWith(DefaultProposals(), 1)

	proposal, err := repo.Find("fr", CategorySecureCore)
	assert.NoError(t, err)
	assert.Equal(t, "fr-2", proposal.ProviderID)

	_, err = repo.Find("DE", CategoryTor)
	assert.Equal(t, ErrNoProposals, err)
}

func TestFastest_PrefersStandardList(t *testing.T) {
	repo := NewRepositoryWith(DefaultProposals(), 1)

	proposal, err := repo.Fastest()
	assert.NoError(t, err)
	assert.Equal(t, CategoryStandard, proposal.Category)
}

func TestRandom_DrawsFromStandardList(t *testing.T) {
	repo := NewRepositoryWith(DefaultProposals(), 42)

	for i := 0; i < 10; i++ {
		proposal, err := repo.Random()
		assert.NoError(t, err)
		assert.Equal(t, CategoryStandard, proposal.Category)
	}
}

func TestRandom_EmptyRepository(t *testing.T) {
	repo := NewRepositoryWith(nil, 1)

	_, err := repo.Random()
	assert.Equal(t, ErrNoProposals, err)
}
