package system

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lmoren/ritual/internal/cli"
	"github.com/lmoren/ritual/internal/constants"
	"github.com/lmoren/ritual/internal/seed"
)

type SeedCmd struct {
	Weeks int `help:"How many weeks of history to generate." default:"4"`
}

func (c *SeedCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	_, now, err := ctx.SettingsAndNow()
	if err != nil {
		return err
	}

	weeks := c.Weeks
	if weeks <= 0 {
		weeks = constants.DefaultSeedWeeks
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	habits, err := seed.Run(ctx.Store, now, weeks, rng)
	if err != nil {
		return err
	}

	fmt.Printf("Created %d sample habit(s) with %d week(s) of history:\n", len(habits), weeks)
	for _, h := range habits {
		fmt.Printf("  %s (%s): %d completion(s)\n", h.Name, h.Cadence, len(h.Completions))
	}
	return nil
}
