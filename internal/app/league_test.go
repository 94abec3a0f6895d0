package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLeague(t *testing.T) {
	tests := []struct {
		points int
		want   League
	}{
		{1000, LeagueGold},
		{151, LeagueGold},
		{150, LeagueSilver},
		{76, LeagueSilver},
		{75, LeagueBronze},
		{31, LeagueBronze},
		{30, LeagueContributor},
		{1, LeagueContributor},
		{0, LeagueContributor},
		{-5, LeagueContributor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyLeague(tt.points), "points: %d", tt.points)
	}
}

func TestLeagueDisplay(t *testing.T) {
	assert.Equal(t, "gold", LeagueGold.String())
	assert.Equal(t, "Gold League", LeagueGold.Label())
	assert.Equal(t, "badge-gold", LeagueGold.BadgeClass())
	assert.Equal(t, "tier-gold", LeagueGold.TierClass())
	assert.Equal(t, "Silver 🥈", LeagueSilver.Badge())
	assert.Equal(t, "Contributor", LeagueContributor.Label())
	assert.Equal(t, "tier-contributor", League(42).TierClass())
}
