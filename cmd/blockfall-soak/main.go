package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/engine/driver"
)

func main() {
	_ = godotenv.Load()

	duration := flag.Duration("duration", envDuration("BLOCKFALL_DURATION", 10*time.Second), "Upper bound on the whole run.")
	games := flag.Int("games", envInt("BLOCKFALL_GAMES", 8), "Number of games played in parallel.")
	tick := flag.Duration("tick", envDuration("BLOCKFALL_TICK", 2*time.Millisecond), "Gravity interval.")
	seed := flag.Uint64("seed", uint64(envInt("BLOCKFALL_SEED", 0)), "Base seed; 0 picks one at random.")
	width := flag.Int("width", envInt("BLOCKFALL_WIDTH", 10), "Board columns.")
	height := flag.Int("height", envInt("BLOCKFALL_HEIGHT", 20), "Board rows.")
	bag := flag.Bool("bag", false, "Deal pieces from shuffled 7-bags instead of uniformly.")
	debug := flag.Bool("debug", false, "Enable engine debug logging.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		level = lvl
	}
	if *debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if *games <= 0 || *tick <= 0 {
		log.Fatal().Int("games", *games).Dur("tick", *tick).Msg("games and tick must be positive")
	}
	if *seed == 0 {
		*seed = rand.Uint64()
	}
	randomizer := engine.RandomizerUniform
	if *bag {
		randomizer = engine.RandomizerBag
	}

	report := &Report{
		Duration:   *duration,
		Games:      *games,
		Tick:       *tick,
		Width:      *width,
		Height:     *height,
		Randomizer: randomizer,
		Seed:       *seed,
		Results:    make([]GameResult, *games),
	}

	log.Info().Int("games", *games).Dur("duration", *duration).Uint64("seed", *seed).Msg("starting soak run")

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var wg sync.WaitGroup
	for i := range *games {
		cfg := engine.DefaultConfig()
		cfg.Width, cfg.Height = *width, *height
		cfg.SpawnX = min(cfg.SpawnX, *width-4)
		cfg.Seed = *seed + uint64(i)
		cfg.Randomizer = randomizer
		cfg.Logger = log.With().Int("game", i).Logger()

		ctrl, err := driver.NewController(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build board")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			report.Results[i] = play(ctx, i, driver.NewSession(ctrl), *tick, cfg.Seed)
		}()
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	report.Finalize()

	log.Info().Dur("elapsed", report.TotalTime).Float64("avg_score", report.Score.Avg).Msg("soak run finished")

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
}

// play runs gravity and a random player against one session until game over or ctx ends.
func play(ctx context.Context, index int, session *driver.Session, tick time.Duration, seed uint64) GameResult {
	gameCtx, stop := context.WithCancel(ctx)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- session.Run(gameCtx, tick)
	}()

	player := newBot(seed)
	ticker := time.NewTicker(max(tick/2, time.Microsecond))
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			summary := session.Summary()
			log.Debug().Int("game", index).Err(err).Int("score", summary.Score).Msg("game stopped")
			return GameResult{
				Index:    index,
				Summary:  summary,
				Ticks:    session.TickStats(),
				Finished: summary.GameOver,
			}
		case <-ticker.C:
			session.Apply(player.next())
		}
	}
}

// bot issues uniformly random player intents.
type bot struct {
	rng *rand.Rand
}

func newBot(seed uint64) *bot {
	return &bot{rng: rand.New(rand.NewPCG(seed, ^seed))}
}

var botEvents = []driver.EventType{driver.EventLeft, driver.EventRight, driver.EventRotate, driver.EventDown}

func (b *bot) next() driver.MoveEvent {
	return driver.MoveEvent{
		Type:   botEvents[b.rng.IntN(len(botEvents))],
		Source: driver.SourceUser,
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v, err := strconv.Atoi(getEnv(k, strconv.Itoa(def)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s: %v\n", k, err)
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(k, def.String()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s: %v\n", k, err)
		return def
	}
	return v
}
