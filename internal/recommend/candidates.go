// Gamescout - Game Recommendations from Steam Play History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

// defaultCandidates is the built-in reference catalog scored for every
// request: popular and well reviewed titles across genres, plus the classic
// Valve back catalog.
var defaultCandidates = []int64{
	1086940, 1174180, 1091500, 1203220, 1938090, 2073850, 1172470, 1245620,
	730, 578080, 271590, 2357570, 1966720, 1817070, 1623730, 1142710,
	1593500, 1151640, 1085660, 1675200, 2369390, 105600, 252490, 346110,
	413150, 892970, 1665460, 1089350, 975370, 2050650, 394360, 281990,
	1888160, 1517290, 1778820, 2428980, 359550, 236850, 2358720, 1568590,
	1449560, 2277680, 1794680, 1118200, 1145360, 457140, 570, 440,
	4000, 1258080, 813780, 255710, 294100, 526870, 1599340, 1404750,
	1928980, 323190, 244850, 292030, 427520, 548430, 231430, 367520,
	289070, 648800, 1203630, 1888930, 1145350, 1817230, 2239550, 1184370,
	1418630, 1551360, 1449850, 1811260, 1235140, 774361, 306130, 262060,
	678960, 976730, 287700, 242760, 312530, 48700, 220200, 239140,
	377160, 582010, 253230, 214770, 388880, 236090, 257850, 383120,
	8930, 620, 10, 20, 30, 40, 50, 60,
	70, 80, 100, 130, 400, 420, 500, 550,
}

// DefaultCandidates returns a copy of the built-in candidate list.
func DefaultCandidates() []int64 {
	out := make([]int64, len(defaultCandidates))
	copy(out, defaultCandidates)
	return out
}

// dedupIDs drops repeated ids, keeping first-occurrence order.
func dedupIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
