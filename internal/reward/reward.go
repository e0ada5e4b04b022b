// Package reward converts quest size and quiz accuracy into EXP and RP.
package reward

import (
	"math"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
)

const (
	// BasePointsPerSection is the EXP value of one section at multiplier 1.0.
	BasePointsPerSection = 50

	// PassThreshold is the minimum quiz accuracy that earns any reward.
	PassThreshold = 0.5

	// StreakMultiplier applies to a passed quiz on a consecutive day.
	StreakMultiplier = 1.2
)

var categoryMultipliers = map[catalog.Category]float64{
	catalog.CategoryFiction:   1.0,
	catalog.CategoryAcademic:  1.5,
	catalog.CategoryTechnical: 2.0,
}

// Multiplier returns the reward multiplier for a category. Unknown
// categories count as 1.0.
func Multiplier(c catalog.Category) float64 {
	if m, ok := categoryMultipliers[c]; ok {
		return m
	}
	return 1.0
}

// Estimate is the maximum reward a quest can yield.
type Estimate struct {
	Exp int
	Rp  int
}

// EstimateFor returns the potential reward for n sections of category c.
// RP mirrors EXP one-to-one.
func EstimateFor(sections int, c catalog.Category) Estimate {
	if sections < 0 {
		sections = 0
	}
	exp := int(math.Round(float64(BasePointsPerSection*sections) * Multiplier(c)))
	return Estimate{Exp: exp, Rp: exp}
}

// Tally is the raw outcome of a quiz.
type Tally struct {
	Correct int
	Total   int
}

// Ratio returns Correct/Total, or 0 for an empty quiz.
func (t Tally) Ratio() float64 {
	if t.Total <= 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Total)
}

// Passed reports whether the tally meets PassThreshold.
func (t Tally) Passed() bool {
	return t.Total > 0 && t.Ratio() >= PassThreshold
}

// Result is the scored outcome of a quiz.
type Result struct {
	CorrectAnswers int
	TotalQuestions int
	EarnedExp      int
	EarnedRp       int

	// BonusRp is the part of EarnedRp contributed by the streak multiplier.
	BonusRp       int
	IsStreakBonus bool
}

// Passed reports whether the result earned any reward.
func (r Result) Passed() bool {
	return r.EarnedExp > 0 || r.EarnedRp > 0
}

// Score applies quiz accuracy and the streak bonus to a potential reward.
func Score(potentialExp, potentialRp int, tally Tally, streakEligible bool) Result {
	res := Result{
		CorrectAnswers: tally.Correct,
		TotalQuestions: tally.Total,
	}
	if !tally.Passed() {
		return res
	}

	ratio := tally.Ratio()
	exp := round(float64(potentialExp) * ratio)
	rp := round(float64(potentialRp) * ratio)

	if streakEligible {
		base := rp
		exp = round(float64(exp) * StreakMultiplier)
		rp = round(float64(rp) * StreakMultiplier)
		res.BonusRp = rp - base
		res.IsStreakBonus = true
	}

	res.EarnedExp = exp
	res.EarnedRp = rp
	return res
}

func round(v float64) int {
	return int(math.Round(v))
}
