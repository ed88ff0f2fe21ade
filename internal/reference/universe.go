// Package reference holds read-only ticker/sector reference data.
package reference

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/wonny/pairlens/backend/internal/contracts"
)

var tickerPattern = regexp.MustCompile(`^\^?[A-Z]{1,5}$`)

// ValidFormat checks the ticker shape (1-5 letters, optional ^ prefix)
func ValidFormat(raw string) bool {
	return tickerPattern.MatchString(Normalize(raw))
}

// Normalize upper-cases and trims a ticker
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Universe is the membership set, sector map and index allow-list
// ⭐ SSOT: 티커/섹터 검증은 Universe 를 통해서만
type Universe struct {
	sectorOf       map[string]string
	sectors        []string
	indices        []string
	indexSet       map[string]struct{}
	representative map[string][]string
}

// NewUniverse builds a universe from sector → tickers
func NewUniverse(constituents map[string][]string, representative map[string][]string) *Universe {
	u := &Universe{
		sectorOf:       make(map[string]string),
		indices:        append([]string(nil), allowedIndices...),
		indexSet:       make(map[string]struct{}, len(allowedIndices)),
		representative: representative,
	}

	for _, idx := range allowedIndices {
		u.indexSet[idx] = struct{}{}
	}

	// 섹터 순서: 표준 순서 우선, 그 외는 이름순
	known := make(map[string]bool, len(constituents))
	for sector, tickers := range constituents {
		known[sector] = true
		for _, t := range tickers {
			u.sectorOf[Normalize(t)] = sector
		}
	}
	for _, s := range sectorOrder {
		if known[s] {
			u.sectors = append(u.sectors, s)
			delete(known, s)
		}
	}
	extra := make([]string, 0, len(known))
	for s := range known {
		extra = append(extra, s)
	}
	sort.Strings(extra)
	u.sectors = append(u.sectors, extra...)

	return u
}

// Builtin returns the built-in S&P 500 universe
func Builtin() *Universe {
	return NewUniverse(builtinConstituents, representativeBySector)
}

// ValidateTicker 지수는 허용 목록, 일반 티커는 S&P 500 구성 여부 확인
func (u *Universe) ValidateTicker(raw string) contracts.TickerValidation {
	ticker := Normalize(raw)

	if strings.HasPrefix(ticker, "^") {
		if _, ok := u.indexSet[ticker]; ok {
			return contracts.TickerValidation{Valid: true, Ticker: ticker, IsIndex: true}
		}
		return contracts.TickerValidation{
			Ticker:  ticker,
			IsIndex: true,
			Error:   fmt.Sprintf("Index %s is not supported. Allowed indices: %s", ticker, strings.Join(u.indices, ", ")),
		}
	}

	if sector, ok := u.sectorOf[ticker]; ok {
		return contracts.TickerValidation{Valid: true, Ticker: ticker, Sector: sector}
	}

	return contracts.TickerValidation{
		Ticker: ticker,
		Error:  fmt.Sprintf("Ticker %s is not in the S&P 500. Only S&P 500 constituents are supported.", ticker),
	}
}

// IsValidTicker reports whether the ticker is a member or an allowed index
func (u *Universe) IsValidTicker(raw string) bool {
	return u.ValidateTicker(raw).Valid
}

// SectorOf returns the sector of a member ticker
func (u *Universe) SectorOf(ticker string) (string, bool) {
	sector, ok := u.sectorOf[ticker]
	return sector, ok
}

// Sectors returns the ordered sector list
func (u *Universe) Sectors() []string {
	return append([]string(nil), u.sectors...)
}

// IsSector reports whether name is a known sector
func (u *Universe) IsSector(name string) bool {
	for _, s := range u.sectors {
		if s == name {
			return true
		}
	}
	return false
}

// AllowedIndices returns the supported index tickers
func (u *Universe) AllowedIndices() []string {
	return append([]string(nil), u.indices...)
}

// Size returns the number of member tickers
func (u *Universe) Size() int {
	return len(u.sectorOf)
}

// RepresentativeTickers 스크리닝용 표본 (섹터 순서, 중복 제거)
// sector 가 비어 있지 않으면 해당 섹터 소속 티커만
func (u *Universe) RepresentativeTickers(sector string) []string {
	seen := make(map[string]bool)
	var tickers []string

	for _, s := range u.sectors {
		for _, t := range u.representative[s] {
			if seen[t] {
				continue
			}
			seen[t] = true

			if sector != "" {
				if actual, ok := u.sectorOf[t]; !ok || actual != sector {
					continue
				}
			}
			tickers = append(tickers, t)
		}
	}
	return tickers
}
