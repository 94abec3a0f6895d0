package app

// League is a cosmetic rank bucket derived from points.
type League int

// Leagues, from the lowest.
const (
	LeagueContributor League = iota
	LeagueBronze
	LeagueSilver
	LeagueGold
)

// Thresholds are exclusive and ordered from the highest.
var leagueThresholds = []struct {
	above  int
	league League
}{
	{150, LeagueGold},
	{75, LeagueSilver},
	{30, LeagueBronze},
}

type leagueDisplay struct {
	name       string
	label      string
	badge      string
	badgeClass string
	tierClass  string
}

var leagueDisplays = map[League]leagueDisplay{
	LeagueContributor: {"contributor", "Contributor", "Contributor 🎖️", "badge-contributor", "tier-contributor"},
	LeagueBronze:      {"bronze", "Bronze League", "Bronze 🥉", "badge-bronze", "tier-bronze"},
	LeagueSilver:      {"silver", "Silver League", "Silver 🥈", "badge-silver", "tier-silver"},
	LeagueGold:        {"gold", "Gold League", "Gold 🏆", "badge-gold", "tier-gold"},
}

// ClassifyLeague returns league for given points.
func ClassifyLeague(points int) League {
	for _, t := range leagueThresholds {
		if points > t.above {
			return t.league
		}
	}
	return LeagueContributor
}

func (l League) display() leagueDisplay {
	if d, ok := leagueDisplays[l]; ok {
		return d
	}
	return leagueDisplays[LeagueContributor]
}

func (l League) String() string {
	return l.display().name
}

// Label returns league name for detail views, eg. "Gold League".
func (l League) Label() string {
	return l.display().label
}

// Badge returns short badge text.
func (l League) Badge() string {
	return l.display().badge
}

// BadgeClass returns styling tag for badge.
func (l League) BadgeClass() string {
	return l.display().badgeClass
}

// TierClass returns styling tag for card.
func (l League) TierClass() string {
	return l.display().tierClass
}
