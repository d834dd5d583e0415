package model

type Summary struct {
	Balance          Balance      `json:"balance"`
	Members          MemberCounts `json:"members"`
	ActiveSponsors   int          `json:"active_sponsors"`
	ExpiringSponsors []*Sponsor   `json:"expiring_sponsors"`
	Alerts           []string     `json:"alerts"`
}
