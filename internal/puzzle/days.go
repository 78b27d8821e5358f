package puzzle

import (
	"context"
	"strconv"

	"almanac/internal/almanac"
	"almanac/internal/cubes"
	"almanac/internal/search"
	"almanac/internal/trebuchet"
)

func init() {
	Register(Day{Number: 1, Title: "Trebuchet?!", Parts: []Part{textPart(trebuchet.Part1), textPart(trebuchet.Part2)}})
	Register(Day{Number: 2, Title: "Cube Conundrum", Parts: []Part{textPart(cubes.Part1), textPart(cubes.Part2)}})
	Register(Day{Number: 5, Title: "If You Give A Seed A Fertilizer", Parts: []Part{NearestSeed, NearestSeedRange}})
}

// NearestSeed is the lowest location over the seeds read one by one.
func NearestSeed(_ context.Context, _ Env, input string) (string, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return "", err
	}
	loc, err := search.Exact(a, a.Seeds())
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(loc, 10), nil
}

// NearestSeedRange is the lowest location over every seed of the
// (start, length) intervals.
func NearestSeedRange(ctx context.Context, env Env, input string) (string, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return "", err
	}
	ivs, err := a.Intervals()
	if err != nil {
		return "", err
	}
	cfg := env.Search
	if cfg.Logger == nil {
		cfg.Logger = env.Logger
	}
	res, err := search.Intervals(ctx, cfg, a, ivs)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(res.Min, 10), nil
}
