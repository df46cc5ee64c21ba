package pattern

import (
	"fmt"
	"strings"
)

// ValidationResult is the overall verdict of Repository.Validate.
type ValidationResult uint8

const (
	// ValidationSuccess means every rule is symmetric.
	ValidationSuccess ValidationResult = iota
	// ValidationFail means at least one asymmetric rule was found.
	ValidationFail
)

// String returns "success" or "fail".
func (v ValidationResult) String() string {
	if v == ValidationSuccess {
		return "success"
	}
	return "fail"
}

// Violation records one asymmetric rule: PatternUID allows NeighborUID on
// side Direction, but NeighborUID does not allow PatternUID on the reverse
// side.
type Violation struct {
	PatternUID  int
	NeighborUID int
	Direction   Direction
}

// String renders the violation for logs and CLI output.
func (v Violation) String() string {
	return fmt.Sprintf("group %d allows %d on %s, but %d does not allow %d on %s",
		v.PatternUID, v.NeighborUID, v.Direction, v.NeighborUID, v.PatternUID, v.Direction.Reverse())
}

// ValidationReport is the complete outcome of a symmetry check.
type ValidationReport struct {
	Violations []Violation
}

// Result returns ValidationSuccess iff there are no violations.
func (r ValidationReport) Result() ValidationResult {
	if len(r.Violations) == 0 {
		return ValidationSuccess
	}
	return ValidationFail
}

// OK reports whether the rule set is symmetric.
func (r ValidationReport) OK() bool {
	return len(r.Violations) == 0
}

// String lists the verdict and every violation, one per line.
func (r ValidationReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "validation result: %s", r.Result())
	if len(r.Violations) > 0 {
		fmt.Fprintf(&sb, "\nerrors %d:", len(r.Violations))
		for _, v := range r.Violations {
			sb.WriteString("\n  ")
			sb.WriteString(v.String())
		}
	}
	return sb.String()
}

// Validate checks, for every group p, direction d and n in p.Allowed(d),
// that p is in n.Allowed(d.Reverse()). It collects every violation in uid
// then direction order and never stops early. An unregistered repository
// yields an empty report.
//
// Complexity: O(G·4·A) where A is the average allowed-set size.
func (r *Repository) Validate() ValidationReport {
	var report ValidationReport
	for _, p := range r.groups {
		for _, d := range Directions {
			rev := d.Reverse()
			for _, n := range p.rules.allowedView(d) {
				if n.rules.Allows(rev, p) {
					continue
				}
				report.Violations = append(report.Violations, Violation{
					PatternUID:  p.uid,
					NeighborUID: n.uid,
					Direction:   d,
				})
			}
		}
	}
	return report
}

// allowedView returns the internal allowed slice without copying.
func (rs *RuleSet) allowedView(d Direction) []*Group {
	if rs == nil || !d.Valid() {
		return nil
	}
	return rs.allowed[d]
}
