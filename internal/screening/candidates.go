package screening

import "github.com/wonny/pairlens/backend/internal/contracts"

// GenerateCandidates 같은 섹터 내 i<j 조합만 생성 (섹터 간 페어 없음)
// 섹터와 티커 순서는 입력 순서를 따름
func GenerateCandidates(tickers []string, sectorOf func(string) (string, bool), sector string) []contracts.PairCandidate {
	var sectorOrder []string
	bySector := make(map[string][]string)

	for _, ticker := range tickers {
		tickerSector, ok := sectorOf(ticker)
		if !ok {
			continue
		}
		if sector != "" && tickerSector != sector {
			continue
		}
		if _, seen := bySector[tickerSector]; !seen {
			sectorOrder = append(sectorOrder, tickerSector)
		}
		bySector[tickerSector] = append(bySector[tickerSector], ticker)
	}

	var candidates []contracts.PairCandidate
	for _, s := range sectorOrder {
		members := bySector[s]
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				candidates = append(candidates, contracts.PairCandidate{
					TickerA: members[i],
					TickerB: members[j],
					Sector:  s,
				})
			}
		}
	}
	return candidates
}
