package insights

import (
	"fmt"
	"math"

	"github.com/nityasrik/Survey-Analysis/pkg/models/domain"
)

// Ordinal daily screen-time bands, indexed 1..4 for the correlation
// against ratings.
var screenTimeBands = []struct {
	label string
	lo    float64
	hi    float64
}{
	{"Less than 3 hours", 0, 180},
	{"3-5 hours", 180, 360},
	{"6-8 hours", 360, 540},
	{"9+ hours", 540, math.Inf(1)},
}

func digitalHabits(rows []domain.SurveyResponse, opts Options) domain.DigitalHabits {
	habits := domain.DigitalHabits{
		ScreenTime: histogram(rows, opts.ScreenTimeBucketMinutes,
			func(r domain.SurveyResponse) float64 { return r.DailyScreenTimeMinutes }),
		FocusDuration: histogram(rows, opts.FocusBucketMinutes,
			func(r domain.SurveyResponse) float64 { return r.FocusDurationMinutes }),
		Platforms: platformCounts(rows),
		Bands:     bandStats(rows),
	}

	habits.ScreenTimeAttentionCorr, habits.ScreenTimeDistractionCorr, habits.CorrDefined =
		screenTimeCorrelations(rows)

	return habits
}

// histogram buckets a minute field into fixed-width [lo, hi) buckets
// starting at zero. Empty input yields no buckets; otherwise buckets run up
// to the one holding the maximum observed value, empties included. Values
// past a full day all land in one open-ended overflow bucket, so the bucket
// count is bounded by the width, never by the largest value in the data.
func histogram(rows []domain.SurveyResponse, width float64, value func(domain.SurveyResponse) float64) []domain.HistogramBucket {
	if len(rows) == 0 {
		return nil
	}

	overflow := int(domain.MaxMinutesPerDay / width)
	bucketFor := func(v float64) int {
		b := int(v / width)
		if b > overflow {
			b = overflow
		}
		return b
	}

	maxBucket := 0
	for _, r := range rows {
		if b := bucketFor(value(r)); b > maxBucket {
			maxBucket = b
		}
	}

	buckets := make([]domain.HistogramBucket, maxBucket+1)
	for i := range buckets {
		lo := float64(i) * width
		hi := lo + width
		buckets[i] = domain.HistogramBucket{
			Label: fmt.Sprintf("%d-%d min", int(lo), int(hi)),
			Lo:    lo,
			Hi:    hi,
		}
	}
	if maxBucket == overflow {
		lo := float64(overflow) * width
		buckets[overflow] = domain.HistogramBucket{
			Label: fmt.Sprintf("%d+ min", int(lo)),
			Lo:    lo,
			Hi:    math.Inf(1),
		}
	}
	for _, r := range rows {
		buckets[bucketFor(value(r))].Count++
	}
	return buckets
}

func platformCounts(rows []domain.SurveyResponse) []domain.CategoryCount {
	counts := map[string]int{}
	for _, r := range rows {
		for _, p := range r.PlatformsUsed {
			counts[p]++
		}
	}
	return sortedCounts(counts)
}

func bandIndex(minutes float64) int {
	for i, b := range screenTimeBands {
		if minutes >= b.lo && minutes < b.hi {
			return i
		}
	}
	return len(screenTimeBands) - 1
}

// bandStats averages the two ratings within each screen-time band. Bands
// with no respondents are omitted; the rest keep their ordinal order.
func bandStats(rows []domain.SurveyResponse) []domain.ScreenTimeBand {
	type acc struct {
		n           int
		attention   float64
		distraction float64
	}
	accs := make([]acc, len(screenTimeBands))
	for _, r := range rows {
		i := bandIndex(r.DailyScreenTimeMinutes)
		accs[i].n++
		accs[i].attention += float64(r.AttentionRating)
		accs[i].distraction += float64(r.DistractionRating)
	}

	var bands []domain.ScreenTimeBand
	for i, a := range accs {
		if a.n == 0 {
			continue
		}
		bands = append(bands, domain.ScreenTimeBand{
			Label:          screenTimeBands[i].label,
			Respondents:    a.n,
			AvgAttention:   a.attention / float64(a.n),
			AvgDistraction: a.distraction / float64(a.n),
		})
	}
	return bands
}

func screenTimeCorrelations(rows []domain.SurveyResponse) (attention, distraction float64, defined bool) {
	xs := make([]float64, len(rows))
	attn := make([]float64, len(rows))
	dist := make([]float64, len(rows))
	for i, r := range rows {
		xs[i] = float64(bandIndex(r.DailyScreenTimeMinutes) + 1)
		attn[i] = float64(r.AttentionRating)
		dist[i] = float64(r.DistractionRating)
	}

	attnCorr, okA := pearson(xs, attn)
	distCorr, okD := pearson(xs, dist)
	if !okA || !okD {
		return 0, 0, false
	}
	return attnCorr, distCorr, true
}

// pearson returns the correlation coefficient, or ok=false when either
// series has zero variance or fewer than two points.
func pearson(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	if len(xs) < 2 {
		return 0, false
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}
