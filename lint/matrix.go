package lint

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tandemdrive/ocpi-tariffs/types"
)

// Range is an optional-bounded interval: a nil bound is unbounded on that
// side.
type Range struct {
	Lower  *decimal.Decimal
	Higher *decimal.Decimal
}

func newRange(lower, higher *decimal.Decimal) Range {
	return Range{Lower: lower, Higher: higher}
}

func wildcard() Range {
	return Range{}
}

// contains reports whether other is fully within r's bounds.
func (r Range) contains(other Range) bool {
	if r.Lower != nil {
		if other.Lower == nil || r.Lower.GreaterThan(*other.Lower) {
			return false
		}
	}
	if r.Higher != nil {
		if other.Higher == nil || r.Higher.LessThan(*other.Higher) {
			return false
		}
	}
	return true
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func kwhPtr(k *types.Kwh) *decimal.Decimal {
	if k == nil {
		return nil
	}
	return decimalPtr(k.Number().Decimal())
}

func secondsPtr(t *types.LocalTime) *decimal.Decimal {
	if t == nil {
		return nil
	}
	return decimalPtr(decimal.NewFromInt(int64(t.SecondsSinceMidnight())))
}

func daysPtr(d *types.LocalDate) *decimal.Decimal {
	if d == nil {
		return nil
	}
	return decimalPtr(decimal.NewFromInt(d.DaysSinceEpoch()))
}

func millisPtr(s *types.SecondsRound) *decimal.Decimal {
	if s == nil {
		return nil
	}
	return decimalPtr(decimal.NewFromInt(s.Duration().Milliseconds()))
}

// pattern is one row of a dimension's pattern matrix: the four-column
// hyperrectangle a tariff element's restrictions describe, plus a back
// reference to where it came from (nil for the virtual wildcard row).
type pattern struct {
	columns        [4]Range
	isUseful       bool
	elementIndex   *int
	componentIndex *int
}

// matrix runs the Maranget usefulness algorithm over a dimension's
// patterns.
type matrix struct {
	bounds   [4]Range
	patterns []pattern
}

func newMatrix(bounds []Range) *matrix {
	m := &matrix{}
	copy(m.bounds[:], bounds)
	return m
}

func (m *matrix) addPattern(p pattern) {
	m.patterns = append(m.patterns, p)
}

// usefulness marks each pattern useful iff there exists a constructor
// tuple it matches that no pattern above it also matches.
func (m *matrix) usefulness() {
	for i := range m.patterns {
		consider := make([]int, i)
		for j := range consider {
			consider[j] = j
		}

		witnesses := m.usefulnessRec(0, i, consider)
		if len(witnesses) > 0 {
			m.patterns[i].isUseful = true
		}
	}
}

func (m *matrix) usefulnessRec(column, patternIdx int, consider []int) [][]Range {
	if column >= len(m.bounds) {
		if len(consider) == 0 {
			return [][]Range{{}}
		}
		return nil
	}

	bounds := m.bounds[column]

	ranges := make([]Range, 0, len(consider)+2)
	ranges = append(ranges, m.patterns[patternIdx].columns[column])
	for _, i := range consider {
		ranges = append(ranges, m.patterns[i].columns[column])
	}
	ranges = append(ranges, wildcard())

	var witnesses [][]Range

	for _, constr := range constructors(bounds, ranges) {
		colpat := m.patterns[patternIdx].columns[column]
		if !colpat.contains(constr) {
			continue
		}

		var nextConsider []int
		for _, i := range consider {
			if m.patterns[i].columns[column].contains(constr) {
				nextConsider = append(nextConsider, i)
			}
		}

		for _, witness := range m.usefulnessRec(column+1, patternIdx, nextConsider) {
			witnesses = append(witnesses, append(witness, constr))
		}
	}

	return witnesses
}

// point is one endpoint on the extended number line (-inf, a value, +inf),
// ordered with -inf < value < +inf.
type point struct {
	kind  int // 0 = -inf, 1 = value, 2 = +inf
	value decimal.Decimal
}

func negInf() point { return point{kind: 0} }
func posInf() point { return point{kind: 2} }
func valuePoint(v decimal.Decimal) point { return point{kind: 1, value: v} }

func (p point) less(q point) bool {
	if p.kind != q.kind {
		return p.kind < q.kind
	}
	if p.kind == 1 {
		return p.value.LessThan(q.value)
	}
	return false
}

func (p point) equal(q point) bool {
	if p.kind != q.kind {
		return false
	}
	if p.kind == 1 {
		return p.value.Equal(q.value)
	}
	return true
}

// constructors computes the sorted, deduplicated partition of the real
// line induced by the endpoints of ranges, constrained to bounds,
// matching the reference implementation's edge-collapsing rule: a
// half-open interval that exactly touches the dimension's global bound is
// dropped rather than emitted as a redundant extra constructor.
func constructors(bounds Range, ranges []Range) []Range {
	points := make([]point, 0, len(ranges)*2)
	for _, r := range ranges {
		if r.Lower != nil {
			points = append(points, valuePoint(*r.Lower))
		} else {
			points = append(points, negInf())
		}
		if r.Higher != nil {
			points = append(points, valuePoint(*r.Higher))
		} else {
			points = append(points, posInf())
		}
	}

	sort.Slice(points, func(i, j int) bool { return points[i].less(points[j]) })

	deduped := points[:0:0]
	for i, p := range points {
		if i == 0 || !p.equal(points[i-1]) {
			deduped = append(deduped, p)
		}
	}
	points = deduped

	var out []Range
	var prev *point

	for i := range points {
		pt := points[i]

		var lower *decimal.Decimal
		if prev != nil {
			switch prev.kind {
			case 1:
				v := prev.value
				lower = &v
			default:
				lower = nil
			}
		} else {
			p := pt
			prev = &p
			continue
		}

		var higher *decimal.Decimal
		if pt.kind == 1 {
			v := pt.value
			higher = &v
		}

		switch {
		case lower == nil && higher != nil && bounds.Lower != nil && higher.Equal(*bounds.Lower):
			// skip: collapses onto the dimension's lower bound
		case lower != nil && higher == nil && bounds.Higher != nil && lower.Equal(*bounds.Higher):
			// skip: collapses onto the dimension's higher bound
		default:
			out = append(out, newRange(lower, higher))
		}

		p := pt
		prev = &p
	}

	return out
}
