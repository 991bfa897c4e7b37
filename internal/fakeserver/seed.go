package fakeserver

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/heartmarshall/leadflow/internal/domain"
)

var (
	seedFirstNames = []string{"Ann", "Boris", "Chloe", "Dmitri", "Elena", "Farid", "Grace", "Hugo", "Iris", "Jonas", "Kira", "Liam"}
	seedLastNames  = []string{"Smith", "Ivanova", "Garcia", "Chen", "Okafor", "Novak", "Larsen", "Haddad", "Moreau", "Tanaka"}
	seedCompanies  = []string{"Acme", "Globex", "Initech", "Umbrella", "Hooli", "Stark Industries"}
	seedCities     = []string{"Austin", "Berlin", "Lisbon", "Toronto", "Warsaw"}
	seedSources    = []domain.Source{domain.SourceWebsite, domain.SourceFacebookAds, domain.SourceGoogleAds, domain.SourceReferral, domain.SourceEvents, domain.SourceOther}
	seedStatuses   = []domain.Status{domain.StatusNew, domain.StatusContacted, domain.StatusQualified, domain.StatusWon, domain.StatusLost}
)

// SeedLeads generates n deterministic leads created an hour apart, the most
// recent one at now.
func SeedLeads(n int, now time.Time) []domain.Lead {
	rng := rand.New(rand.NewPCG(42, 7))

	out := make([]domain.Lead, 0, n)
	for i := range n {
		first := seedFirstNames[rng.IntN(len(seedFirstNames))]
		last := seedLastNames[rng.IntN(len(seedLastNames))]
		company := seedCompanies[rng.IntN(len(seedCompanies))]
		city := seedCities[rng.IntN(len(seedCities))]
		status := seedStatuses[rng.IntN(len(seedStatuses))]
		created := now.Add(-time.Duration(i) * time.Hour).UTC()

		lead := domain.Lead{
			ID:        fmt.Sprintf("seed-%04d", i+1),
			CreatedAt: created,
			LeadFields: domain.LeadFields{
				FirstName:   first,
				LastName:    last,
				Email:       strings.ToLower(fmt.Sprintf("%s.%s%d@example.com", first, last, i+1)),
				Phone:       fmt.Sprintf("+1 555 %04d", rng.IntN(10000)),
				Company:     &company,
				City:        &city,
				Source:      seedSources[rng.IntN(len(seedSources))],
				Status:      status,
				Score:       rng.IntN(domain.MaxScore + 1),
				LeadValue:   float64(rng.IntN(500)) * 100,
				IsQualified: status == domain.StatusQualified || status == domain.StatusWon,
			},
		}
		if rng.IntN(2) == 0 {
			activity := created.Add(time.Duration(rng.IntN(48)) * time.Hour)
			lead.LastActivityAt = &activity
		}
		out = append(out, lead)
	}
	return out
}
