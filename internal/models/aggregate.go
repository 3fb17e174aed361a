package models

import (
	"math"
	"strconv"
)

// Average is the mean of a set of ratings. A zero Count means there are no
// ratings at all, which is different from an average of zero.
type Average struct {
	Value float64
	Count int
}

// Rated reports whether at least one rating contributed to the average.
func (a Average) Rated() bool {
	return a.Count > 0
}

func (a Average) String() string {
	if !a.Rated() {
		return "no ratings yet"
	}
	return strconv.FormatFloat(a.Value, 'f', 1, 64)
}

// AverageOf computes the mean of ratings rounded to one decimal place.
func AverageOf(ratings []Rating) Average {
	if len(ratings) == 0 {
		return Average{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	mean := float64(sum) / float64(len(ratings))
	return Average{Value: math.Round(mean*10) / 10, Count: len(ratings)}
}

// Distribution counts ratings per star value; index 0 holds one-star ratings.
type Distribution [MaxRating]int

// DistributionOf buckets ratings by value. Values outside [1,5] are ignored.
func DistributionOf(ratings []Rating) Distribution {
	var d Distribution
	for _, r := range ratings {
		if r.Value >= MinRating && r.Value <= MaxRating {
			d[r.Value-1]++
		}
	}
	return d
}

// Count returns the number of ratings with the given star value.
func (d Distribution) Count(stars int) int {
	if stars < MinRating || stars > MaxRating {
		return 0
	}
	return d[stars-1]
}

func (d Distribution) Total() int {
	total := 0
	for _, c := range d {
		total += c
	}
	return total
}

// Percent returns the share of ratings with the given star value, 0..100.
// It is zero for every bucket when there are no ratings.
func (d Distribution) Percent(stars int) float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return float64(d.Count(stars)) * 100 / float64(total)
}

// TopRating returns the highest rating value present, if any.
func (d Distribution) TopRating() (int, bool) {
	for stars := MaxRating; stars >= MinRating; stars-- {
		if d.Count(stars) > 0 {
			return stars, true
		}
	}
	return 0, false
}
